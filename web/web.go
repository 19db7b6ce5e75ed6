package web

import _ "embed"

// Index 单页界面：左侧输入参数，右侧实时温度曲线
//
//go:embed index.html
var Index []byte
