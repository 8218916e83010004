package entities

import (
	"image/color"
	"strconv"
	"strings"
)

// 常用调色板
var (
	ColorPlayer      = color.RGBA{R: 0x00, G: 0xf0, B: 0xff, A: 0xff}
	ColorEnemyBullet = color.RGBA{R: 0xff, G: 0x00, B: 0x55, A: 0xff}
	ColorExplosion   = color.RGBA{R: 0xff, G: 0x55, B: 0x00, A: 0xff}
	ColorHitSpark    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorShieldSpark = color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	ColorBoss        = color.RGBA{R: 0xff, G: 0x00, B: 0x55, A: 0xff}
	ColorMinion      = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	ColorSeraph      = color.RGBA{R: 0xcc, G: 0xff, B: 0xff, A: 0xff}
)

// ParseHexColor 解析 "#rrggbb" 格式的颜色，失败时返回白色
func ParseHexColor(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
