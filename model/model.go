package model

import "time"

// 计算模式
const (
	ModeDirect  = "direct"
	ModeDerived = "derived"
)

// Env 前端传入的全部输入参数
type Env struct {
	Mode string `json:"mode"`

	// 推导 k 时使用
	Material     string  `json:"material"`
	Thickness    float64 `json:"thickness"`
	HInner       float64 `json:"h_inner"`
	HOuter       float64 `json:"h_outer"`
	Area         float64 `json:"area"`
	Mass         float64 `json:"mass"`
	SpecificHeat float64 `json:"specific_heat"`

	// 直接给定 k 时使用
	K float64 `json:"k"`

	StartTemperature   float64 `json:"start_temperature"`
	AmbientTemperature float64 `json:"ambient_temperature"`
}

// DefaultEnv 与界面初始状态一致
func DefaultEnv() Env {
	return Env{
		Mode:               ModeDirect,
		Material:           "glass",
		Thickness:          0.003,
		HInner:             10.0,
		HOuter:             25.0,
		Area:               0.03,
		Mass:               500,
		SpecificHeat:       4.18,
		K:                  0.1,
		StartTemperature:   5,
		AmbientTemperature: 22,
	}
}

// Snapshot 一次模拟的摘要，保存在会话历史中
type Snapshot struct {
	Env     Env       `json:"env"`
	K       float64   `json:"k"`
	HTotal  float64   `json:"h_total,omitempty"`
	Final   float64   `json:"final"`
	Created time.Time `json:"created"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 消息类型
const (
	// request
	TypeEnv       = "env"
	TypeSimulate  = "simulate"
	TypeCompare   = "compare"
	TypeHistory   = "history"
	TypeMaterials = "materials"
	TypeTheory    = "theory"
	TypeLimits    = "limits"

	// response
	TypeEnvSet   = "envSet"
	TypeResult   = "result"
	TypeCompared = "compared"
	TypeError    = "error"
)
