package export

import (
	"errors"
	"io"

	"beercool/calculator"

	"github.com/gocarina/gocsv"
)

var ErrLengthMismatch = errors.New("time and temperature length mismatch")

// Row 导出文件中的一行
type Row struct {
	Time        float64 `csv:"time_min"`
	Temperature float64 `csv:"temperature_c"`
}

func Rows(res *calculator.Result) ([]*Row, error) {
	if len(res.Time) != len(res.Temperature) {
		return nil, ErrLengthMismatch
	}
	rows := make([]*Row, len(res.Time))
	for i := range res.Time {
		rows[i] = &Row{Time: res.Time[i], Temperature: res.Temperature[i]}
	}
	return rows, nil
}

// WriteCSV 导出温度曲线
func WriteCSV(w io.Writer, res *calculator.Result) error {
	rows, err := Rows(res)
	if err != nil {
		return err
	}
	return gocsv.Marshal(rows, w)
}

// ReadCSV 读取 WriteCSV 导出的文件
func ReadCSV(r io.Reader) (time, temperature []float64, err error) {
	var rows []*Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, nil, err
	}
	time = make([]float64, len(rows))
	temperature = make([]float64, len(rows))
	for i, row := range rows {
		time[i] = row.Time
		temperature[i] = row.Temperature
	}
	return time, temperature, nil
}
