package flower

import "fmt"

// HSL 是一个以整数表示的 HSL 颜色，S/L 为百分比
type HSL struct {
	H int
	S int
	L int
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// ColorPair 是一朵花的主色与辅色
type ColorPair struct {
	Primary   string
	Secondary string
}

// proceduralColors 根据种子生成一对 HSL 颜色：辅色色相偏移 20-59，饱和度/亮度各降 10 且不低于 40
func proceduralColors(seed uint32) (HSL, HSL) {
	hue := int(Rand01(seed, saltHue) * 360)
	sat := 60 + int(Rand01(seed, saltSaturation)*30)
	light := 55 + int(Rand01(seed, saltLightness)*20)
	shift := 20 + int(Rand01(seed, saltHueShift)*40)

	primary := HSL{H: hue, S: sat, L: light}
	secondary := HSL{
		H: (hue + shift) % 360,
		S: max(40, sat-10),
		L: max(40, light-10),
	}
	return primary, secondary
}

// synthesizeColors 将程序色与心情预设色盘混合；色盘为空时直接返回两种程序色
func synthesizeColors(seed uint32, palette []string) (ColorPair, error) {
	hsl1, hsl2 := proceduralColors(seed)
	if len(palette) == 0 {
		return ColorPair{Primary: hsl1.String(), Secondary: hsl2.String()}, nil
	}

	presetA, err := PickStable(palette, seed, saltPresetA)
	if err != nil {
		return ColorPair{}, err
	}
	presetB, err := PickStable(palette, seed, saltPresetB)
	if err != nil {
		return ColorPair{}, err
	}

	if Rand01(seed, saltPresetSwitch) > 0.5 {
		return ColorPair{Primary: presetA, Secondary: hsl2.String()}, nil
	}
	return ColorPair{Primary: hsl1.String(), Secondary: presetB}, nil
}
