package willowbind

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// RenderAttrs holds the host's process-wide render defaults. The host sets
// it once at setup; binder functions only read it.
type RenderAttrs struct {
	// Animation is the default animation configuration merged beneath every
	// per-node "animation" and "states.animation" entry. Times are in
	// milliseconds.
	Animation Attrs `yaml:"animation"`
}

// DefaultRenderAttrs returns the defaults used by NewScene.
func DefaultRenderAttrs() RenderAttrs {
	return RenderAttrs{
		Animation: Attrs{
			"duration": 300,
			"delay":    0,
			"easing":   "linear",
			"useTween": false,
		},
	}
}

// LoadRenderAttrs parses YAML render defaults and merges them over
// DefaultRenderAttrs.
//
//	animation:
//	  duration: 500
//	  easing: outCubic
func LoadRenderAttrs(data []byte) (RenderAttrs, error) {
	var raw struct {
		Animation map[string]any `yaml:"animation"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return RenderAttrs{}, fmt.Errorf("willowbind: failed to parse render attrs: %w", err)
	}
	def := DefaultRenderAttrs()
	return RenderAttrs{Animation: Merge(def.Animation, Attrs(raw.Animation))}, nil
}

// AnimationConfig is the typed view of a merged "animation" entry.
type AnimationConfig struct {
	From     Attrs   `mapstructure:"from"`
	Middle   Attrs   `mapstructure:"middle"`
	To       Attrs   `mapstructure:"to"`
	Use      Attrs   `mapstructure:"use"`
	Delay    float64 `mapstructure:"delay"`
	Duration float64 `mapstructure:"duration"`
	UseTween bool    `mapstructure:"useTween"`
	Easing   any     `mapstructure:"easing"`
	Fill     string  `mapstructure:"fill"`

	// Formatter maps each tween tick before it is applied. Never nil after
	// decoding.
	Formatter func(Attrs) Attrs
}

// decodeAnimationConfig decodes a merged animation mapping. The formatter is
// taken out before decoding since it is a function value.
func decodeAnimationConfig(m Attrs) (AnimationConfig, error) {
	var cfg AnimationConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return cfg, err
	}
	// Formatter has no tag; mapstructure would match it by field name.
	if err := dec.Decode(map[string]any(m.Omit("formatter", "Formatter"))); err != nil {
		return cfg, fmt.Errorf("willowbind: invalid animation config: %w", err)
	}
	cfg.Formatter = formatterOf(m["formatter"])
	return cfg, nil
}

func formatterOf(v any) func(Attrs) Attrs {
	switch f := v.(type) {
	case func(Attrs) Attrs:
		if f != nil {
			return f
		}
	case func(map[string]any) map[string]any:
		if f != nil {
			return func(a Attrs) Attrs { return Attrs(f(map[string]any(a))) }
		}
	}
	return func(a Attrs) Attrs { return a }
}

// easings maps easing names to gween functions. Names are matched
// case-insensitively with dashes removed, so "ease-in-out" and
// "easeInOut" are the same entry.
var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"ease":       ease.InOutQuad,
	"easein":     ease.InQuad,
	"easeout":    ease.OutQuad,
	"easeinout":  ease.InOutQuad,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"inback":     ease.InBack,
	"outback":    ease.OutBack,
	"inbounce":   ease.InBounce,
	"outbounce":  ease.OutBounce,
	"inelastic":  ease.InElastic,
	"outelastic": ease.OutElastic,
}

// EasingFunc resolves an easing spec: nil, an ease.TweenFunc, a function
// with the same signature, or a name. Unknown specs resolve to linear.
func EasingFunc(spec any) ease.TweenFunc {
	switch e := spec.(type) {
	case ease.TweenFunc:
		if e != nil {
			return e
		}
	case func(t, b, c, d float32) float32:
		if e != nil {
			return e
		}
	case string:
		name := strings.ToLower(strings.ReplaceAll(e, "-", ""))
		if fn, ok := easings[name]; ok {
			return fn
		}
	}
	return ease.Linear
}

// easeProgress maps linear progress p in [0, 1] through fn.
func easeProgress(fn ease.TweenFunc, p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return float64(fn(float32(p), 0, 1, 1))
}
