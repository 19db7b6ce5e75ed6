package material

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// 容器材料，导热系数单位 W/m·K
type Material int

const (
	Glass Material = iota
	Aluminum
	Plastic
)

var ErrUnknownMaterial = errors.New("unknown material")

var table = [...]struct {
	name         string
	conductivity float64
	aliases      []string
}{
	Glass:    {name: "glass", conductivity: 1.0, aliases: []string{"glas"}},
	Aluminum: {name: "aluminum", conductivity: 235.0, aliases: []string{"aluminium"}},
	Plastic:  {name: "plastic", conductivity: 0.2, aliases: []string{"kunststoff"}},
}

// All 按界面显示顺序返回所有材料
func All() []Material {
	return []Material{Glass, Aluminum, Plastic}
}

func (m Material) Valid() bool {
	return m >= 0 && int(m) < len(table)
}

func (m Material) Conductivity() float64 {
	if !m.Valid() {
		return 0
	}
	return table[m].conductivity
}

func (m Material) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Material(%d)", int(m))
	}
	return table[m].name
}

// Parse 材料名称，不区分大小写，兼容德语名称
func Parse(name string) (Material, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, item := range table {
		if item.name == name {
			return Material(i), nil
		}
		for _, alias := range item.aliases {
			if alias == name {
				return Material(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
}

func (m Material) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMaterial, int(m))
	}
	return json.Marshal(m.String())
}

func (m *Material) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Info 用于向前端推送材料列表
type Info struct {
	Name         string  `json:"name"`
	Conductivity float64 `json:"conductivity"`
}

func Infos() []Info {
	infos := make([]Info, 0, len(table))
	for _, m := range All() {
		infos = append(infos, Info{Name: m.String(), Conductivity: m.Conductivity()})
	}
	return infos
}
