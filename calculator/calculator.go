package calculator

import (
	"beercool/model"

	log "github.com/sirupsen/logrus"
)

// calculator 的接口定义

type Calculator interface {
	// 输入范围与时间网格
	Limits() Limits
	Grid() Grid

	// 校验输入并模拟
	Run(env model.Env) (*Result, error)

	// 对比不同材料
	Compare(env model.Env) ([]*Result, error)
}

type calculator struct {
	grid   Grid
	limits Limits
}

func NewCalculator(grid Grid, limits Limits) Calculator {
	return &calculator{grid: grid, limits: limits}
}

func (c *calculator) Limits() Limits {
	return c.limits
}

func (c *calculator) Grid() Grid {
	return c.grid
}

func (c *calculator) config(env model.Env) (Config, error) {
	if err := c.limits.Check(env); err != nil {
		return Config{}, err
	}
	return FromEnv(env, c.grid)
}

func (c *calculator) Run(env model.Env) (*Result, error) {
	cfg, err := c.config(env)
	if err != nil {
		return nil, err
	}
	res, err := Simulate(cfg)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"mode":    env.Mode,
		"k":       res.K,
		"h_total": res.HTotal,
		"start":   res.Start,
		"ambient": res.Ambient,
		"final":   res.Final,
	}).Debug("模拟完成")
	return res, nil
}

func (c *calculator) Compare(env model.Env) ([]*Result, error) {
	cfg, err := c.config(env)
	if err != nil {
		return nil, err
	}
	return Compare(cfg)
}
