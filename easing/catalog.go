package easing

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
	gween "github.com/tanema/gween/ease"
)

var catalog = map[string]Func{
	"linear": Linear,

	"easeInQuad":  EaseInQuad,
	"easeInCubic": EaseInCubic,
	"easeInQuart": EaseInQuart,
	"easeInQuint": EaseInQuint,
	"easeInSine":  EaseInSine,
	"easeInExpo":  EaseInExpo,
	"easeInCirc":  EaseInCirc,

	"easeOutQuad":  EaseOutQuad,
	"easeOutCubic": EaseOutCubic,
	"easeOutQuart": EaseOutQuart,
	"easeOutQuint": EaseOutQuint,
	"easeOutSine":  EaseOutSine,
	"easeOutExpo":  EaseOutExpo,
	"easeOutCirc":  EaseOutCirc,

	"easeInOutQuad":  EaseInOutQuad,
	"easeInOutCubic": EaseInOutCubic,
	"easeInOutQuart": EaseInOutQuart,
	"easeInOutQuint": EaseInOutQuint,
	"easeInOutSine":  EaseInOutSine,
	"easeInOutExpo":  EaseInOutExpo,

	"bounce":          Bounce,
	"easeInBounce":    EaseInBounce,
	"easeInOutBounce": EaseInOutBounce,
	"elastic":         Elastic,

	// Penner curves missing from the core set.
	"easeInOutCirc":    ease.InOutCirc,
	"easeInBack":       ease.InBack,
	"easeOutBack":      ease.OutBack,
	"easeInOutBack":    ease.InOutBack,
	"easeOutElastic":   ease.OutElastic,
	"easeInOutElastic": ease.InOutElastic,

	// Out-then-in curves.
	"easeOutInQuad":    FromTween(gween.OutInQuad),
	"easeOutInCubic":   FromTween(gween.OutInCubic),
	"easeOutInSine":    FromTween(gween.OutInSine),
	"easeOutInBack":    FromTween(gween.OutInBack),
	"easeOutInBounce":  FromTween(gween.OutInBounce),
	"easeOutInElastic": FromTween(gween.OutInElastic),
}

// Lookup returns the easing function registered under name.
func Lookup(name string) (Func, error) {
	f, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("easing %q: %w", name, ErrUnknownEasing)
	}
	return f, nil
}

// Names lists every registered easing name in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromTween adapts a tween function of the form f(time, begin, change,
// duration) to a normalized easing function.
func FromTween(f gween.TweenFunc) Func {
	return func(t float64) float64 {
		return float64(f(float32(t), 0, 1, 1))
	}
}
