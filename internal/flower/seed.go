package flower

import (
	"errors"
	"fmt"
	"unicode/utf16"
)

// ErrInvalidCatalog 在从空候选列表中做选择时返回，属于目录配置错误
var ErrInvalidCatalog = errors.New("invalid catalog: empty candidate list")

const (
	saltMixer  = 374761393
	mixPrime   = 1274126177
	randBucket = 10000
)

// Salt 常量，每个独立决策使用不同 salt，避免结果相关
const (
	saltHue          = 1
	saltSaturation   = 2
	saltLightness    = 3
	saltHueShift     = 4
	saltPresetSwitch = 5
	saltPresetA      = 6
	saltPresetB      = 7
	saltAura         = 11
	saltBase         = 12
	saltCustomGate   = 13
	saltCustomDraw   = 50
	saltDecoration   = 100
	saltDescription  = 200
)

// Hash 对字符串的 UTF-16 码元做多项式滚动哈希，每一步截断为 32 位有符号整数，最终取绝对值。
func Hash(s string) uint32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(unit)
	}
	if h < 0 {
		return uint32(-int64(h))
	}
	return uint32(h)
}

// SeedFor 计算一次生成调用的种子：note|date|moodID
func SeedFor(note, date, moodID string) uint32 {
	return Hash(note + "|" + date + "|" + moodID)
}

// Rand01 基于种子和 salt 派生 [0,1) 区间的伪随机数，只有 10000 个桶。
func Rand01(seed uint32, salt int) float64 {
	t := seed ^ (uint32(salt) * saltMixer)
	t = (t ^ (t >> 13)) * mixPrime
	t = t ^ (t >> 16)
	return float64(t%randBucket) / randBucket
}

// PickStable 用 Rand01(seed, salt) 从非空列表中稳定地选出一个元素
func PickStable[T any](items []T, seed uint32, salt int) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w (salt %d)", ErrInvalidCatalog, salt)
	}
	r := Rand01(seed, salt)
	return items[int(r*float64(len(items)))%len(items)], nil
}
