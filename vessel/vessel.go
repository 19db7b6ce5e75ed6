package vessel

import (
	"errors"
	"fmt"
	"math"

	"beercool/material"

	log "github.com/sirupsen/logrus"
)

// 容器的规格 + 换热参数配置

// 单位说明
// 1. 换热系数 h，W/m²·K
// 2. 壁厚 d，m
// 3. 表面积 A，m²
// 4. 饮料质量 m，g
// 5. 比热容 c，J/g·K

var ErrNonPositive = errors.New("value must be positive")

type Vessel struct {
	Material     material.Material `json:"material"`
	Thickness    float64           `json:"thickness"`     // 壁厚
	HInner       float64           `json:"h_inner"`       // 内侧换热系数，饮料到容器壁
	HOuter       float64           `json:"h_outer"`       // 外侧换热系数，容器壁到环境
	Area         float64           `json:"area"`          // 表面积
	Mass         float64           `json:"mass"`          // 饮料质量
	SpecificHeat float64           `json:"specific_heat"` // 饮料比热容
}

// NewVessel 返回一瓶 500g 啤酒装在玻璃瓶中的默认配置
func NewVessel() Vessel {
	return Vessel{
		Material:     material.Glass,
		Thickness:    0.003,
		HInner:       10.0,
		HOuter:       25.0,
		Area:         0.03,
		Mass:         500,
		SpecificHeat: 4.18,
	}
}

func (v Vessel) Conductivity() float64 {
	return v.Material.Conductivity()
}

// Validate 返回第一个非正的物理量
func (v Vessel) Validate() error {
	if !v.Material.Valid() {
		return fmt.Errorf("%w: %d", material.ErrUnknownMaterial, int(v.Material))
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"thickness", v.Thickness},
		{"h_inner", v.HInner},
		{"h_outer", v.HOuter},
		{"area", v.Area},
		{"mass", v.Mass},
		{"specific_heat", v.SpecificHeat},
	}
	for _, f := range fields {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s = %v: %w", f.name, f.value, ErrNonPositive)
		}
	}
	return nil
}

func (v *Vessel) SetMaterial(m material.Material) {
	v.Material = m
	log.WithFields(log.Fields{
		"material":     m.String(),
		"conductivity": m.Conductivity(),
	}).Debug("设置容器材料")
}

func (v *Vessel) SetThickness(d float64) {
	v.Thickness = d
}

func (v *Vessel) SetCoefficients(hInner, hOuter float64) {
	v.HInner = hInner
	v.HOuter = hOuter
	log.WithFields(log.Fields{
		"h_inner": hInner,
		"h_outer": hOuter,
	}).Debug("设置换热系数")
}

func (v *Vessel) SetContent(area, mass, specificHeat float64) {
	v.Area = area
	v.Mass = mass
	v.SpecificHeat = specificHeat
	log.WithFields(log.Fields{
		"area":          area,
		"mass":          mass,
		"specific_heat": specificHeat,
	}).Debug("设置饮料参数")
}
