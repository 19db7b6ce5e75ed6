package config

import (
	"beercool/calculator"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

const DefaultPath = "conf/config.ini"

type Config struct {
	Server     Server
	Log        Log
	Simulation calculator.Grid
	Limits     calculator.Limits
}

type Server struct {
	Addr        string
	HistorySize int
	CheckOrigin bool
}

type Log struct {
	Level     string
	Formatter string
}

// Load 读取配置文件，文件不存在时使用默认值
func Load(path string) *Config {
	file, err := ini.LooseLoad(path)
	if err != nil {
		log.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Warn("配置文件读取错误，使用默认配置")
		file = ini.Empty()
	}
	return loadCfg(file)
}

// Parse 从内存中的 ini 数据读取配置
func Parse(data []byte) (*Config, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, err
	}
	return loadCfg(file), nil
}

func loadCfg(file *ini.File) *Config {
	server := file.Section("server")
	logging := file.Section("log")
	simulation := file.Section("simulation")
	limits := file.Section("limits")
	def := calculator.DefaultLimits()

	rng := func(name string, d calculator.Range) calculator.Range {
		return calculator.Range{
			Min: limits.Key(name + "Min").MustFloat64(d.Min),
			Max: limits.Key(name + "Max").MustFloat64(d.Max),
		}
	}

	return &Config{
		Server: Server{
			Addr:        server.Key("Addr").MustString(":9000"),
			HistorySize: server.Key("HistorySize").MustInt(10),
			CheckOrigin: server.Key("CheckOrigin").MustBool(false),
		},
		Log: Log{
			Level:     logging.Key("Level").MustString("info"),
			Formatter: logging.Key("Formatter").In("text", []string{"text", "json"}),
		},
		Simulation: calculator.Grid{
			End:     simulation.Key("TimeEnd").MustFloat64(calculator.DefaultTimeEnd),
			Samples: simulation.Key("Samples").MustInt(calculator.DefaultSamples),
		},
		Limits: calculator.Limits{
			Thickness:          rng("Thickness", def.Thickness),
			HInner:             rng("HInner", def.HInner),
			HOuter:             rng("HOuter", def.HOuter),
			Area:               rng("Area", def.Area),
			Mass:               rng("Mass", def.Mass),
			SpecificHeat:       rng("SpecificHeat", def.SpecificHeat),
			StartTemperature:   rng("StartTemperature", def.StartTemperature),
			AmbientTemperature: rng("AmbientTemperature", def.AmbientTemperature),
			RateConstant:       rng("RateConstant", def.RateConstant),
		},
	}
}

// SetupLogging 按配置设置 logrus 的级别与格式
func (c *Config) SetupLogging() {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		log.WithField("level", c.Log.Level).Warn("无效的日志级别，使用 info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if c.Log.Formatter == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
