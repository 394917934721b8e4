package css_test

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"stylec/atom"
	"stylec/css"
	"stylec/notnan"
	"stylec/sheet"
	"stylec/style"
)

func parseClasses(t *testing.T, src string, scope uint64) (*sheet.ClassMap, css.Diagnostics) {
	t.Helper()
	p := css.NewParser(zap.NewNop())
	return p.ParseClassMap([]byte(src), scope, "test.css")
}

func parseList(t *testing.T, src string) []style.Attribute {
	t.Helper()
	p := css.NewParser(zap.NewNop())
	attrs, diags := p.ParseStyleList([]byte(src), 0)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics for %q: %v", src, diags.Err())
	}
	return attrs
}

func sameAttrs(t *testing.T, got, want []style.Attribute) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d attributes, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("attribute %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// classAttrs splits the flat attribute list of m by class.
func classAttrs(m *sheet.ClassMap) map[uint64][]style.Attribute {
	out := make(map[uint64][]style.Attribute, len(m.Classes))
	pos := 0
	for _, c := range m.Classes {
		out[c.ID] = m.Attrs[pos : pos+c.Count]
		pos += c.Count
	}
	return out
}

func TestParseClassMapBasic(t *testing.T) {
	m, diags := parseClasses(t, ".c1{width:10px;height:20px;}", 0)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Err())
	}
	if len(m.Classes) != 1 || m.Classes[0].ID != 1 || m.Classes[0].Count != 2 {
		t.Fatalf("unexpected classes: %+v", m.Classes)
	}
	sameAttrs(t, m.Attrs, []style.Attribute{
		style.New(style.KindWidth, style.Points(10)),
		style.New(style.KindHeight, style.Points(20)),
	})
}

func TestParseClassMapToSheet(t *testing.T) {
	m, diags := parseClasses(t, `
	.c123{ width: 10px; height: 20px; }
	.c456{ width: 50%; opacity: 0.5 }`, 0)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Err())
	}

	s := sheet.NewClassSheet()
	if err := m.ToClassSheet(s); err != nil {
		t.Fatalf("ToClassSheet failed: %v", err)
	}
	if err := s.Verify(); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	byClass := classAttrs(m)
	for _, id := range []uint64{123, 456} {
		got, ok, err := s.Class(id)
		if err != nil || !ok {
			t.Fatalf("class %d: ok=%v err=%v", id, ok, err)
		}
		sameAttrs(t, got, byClass[id])
	}
}

func TestParseMultipleSemicolons(t *testing.T) {
	m, diags := parseClasses(t, `
	.c1363885129{
		position: absolute;
		left:25px;
		right: 25px;;
		height: 100%;
	}`, 0)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Err())
	}
	sameAttrs(t, m.Attrs, []style.Attribute{
		style.New(style.KindPositionType, style.PositionTypeAbsolute),
		style.New(style.KindPositionLeft, style.Points(25)),
		style.New(style.KindPositionRight, style.Points(25)),
		style.New(style.KindHeight, style.Percent(1)),
	})
}

func TestParseFaultIsolation(t *testing.T) {
	src := ".c5{\n\twidth: 10px;\n\theight: 10deg;\n\topacity: 0.5;\n\tbogus: 1px;\n\tleft: 3px\n}"
	m, diags := parseClasses(t, src, 0)

	sameAttrs(t, m.Attrs, []style.Attribute{
		style.New(style.KindWidth, style.Points(10)),
		style.New(style.KindOpacity, style.Float(0.5)),
		style.New(style.KindPositionLeft, style.Points(3)),
	})
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(diags), diags.Err())
	}
	if diags.Values() != 1 {
		t.Errorf("got %d value errors, want 1", diags.Values())
	}

	var ve *css.ValueError
	if !errors.As(diags[0], &ve) {
		t.Fatalf("first diagnostic is %T, want *css.ValueError", diags[0].Err)
	}
	if ve.Property != "height" {
		t.Errorf("value error property = %q, want height", ve.Property)
	}
	if diags[0].Line != 3 {
		t.Errorf("value error line = %d, want 3", diags[0].Line)
	}

	var ke *css.KeyError
	if !errors.As(diags[1], &ke) {
		t.Fatalf("second diagnostic is %T, want *css.KeyError", diags[1].Err)
	}
	if ke.Name != "bogus" {
		t.Errorf("key error name = %q, want bogus", ke.Name)
	}
	if diags.Err() == nil {
		t.Error("Err() returned nil with diagnostics present")
	}
}

func TestParseDropsNonNumericClass(t *testing.T) {
	m, diags := parseClasses(t, ".foo{width:1px} div{width:3px} .c2{width:2px}", 0)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Err())
	}
	if len(m.Classes) != 1 || m.Classes[0].ID != 2 {
		t.Fatalf("unexpected classes: %+v", m.Classes)
	}
	sameAttrs(t, m.Attrs, []style.Attribute{style.New(style.KindWidth, style.Points(2))})
}

func TestParseBackgroundColor(t *testing.T) {
	attrs := parseList(t, "background-color: rgb(255,0,0);")
	sameAttrs(t, attrs, []style.Attribute{
		style.New(style.KindBackgroundColor, style.Flat(style.RGBA{R: 255.0 / 256, A: 1})),
	})
}

func TestParseColors(t *testing.T) {
	tests := []struct {
		src  string
		want style.RGBA
	}{
		{"color: #ff00ffff", style.RGBA{R: 1, B: 1, A: 1}},
		{"color: #00ffff", style.RGBA{G: 1, B: 1, A: 1}},
		{"color: #fff", style.RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"color: blue", style.RGBA{B: 1, A: 1}},
		{"color: transparent", style.RGBA{}},
		{"color: rgba(0, 0, 0, 0.5)", style.RGBA{A: 0.5}},
	}
	for _, tt := range tests {
		attrs := parseList(t, tt.src)
		sameAttrs(t, attrs, []style.Attribute{style.New(style.KindColor, style.Flat(tt.want))})
	}
}

func TestParseBareHexIsNotAColor(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	attrs, diags := p.ParseStyleList([]byte("color: fff; width: 1px"), 0)
	if diags.Values() != 1 {
		t.Fatalf("got %d value errors, want 1", diags.Values())
	}
	sameAttrs(t, attrs, []style.Attribute{style.New(style.KindWidth, style.Points(1))})
}

func TestParseMarginShorthand(t *testing.T) {
	attrs := parseList(t, "margin: 1px 2px;")
	sameAttrs(t, attrs, []style.Attribute{
		style.New(style.KindMarginTop, style.Points(1)),
		style.New(style.KindMarginRight, style.Points(2)),
		style.New(style.KindMarginBottom, style.Points(1)),
		style.New(style.KindMarginLeft, style.Points(2)),
	})

	tests := []struct {
		src  string
		want [4]float32
	}{
		{"margin: 1px", [4]float32{1, 1, 1, 1}},
		{"margin: 1px 2px 3px", [4]float32{1, 2, 3, 2}},
		{"margin: 1px 2px 3px 4px", [4]float32{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		sameAttrs(t, parseList(t, tt.src), []style.Attribute{
			style.New(style.KindMarginTop, style.Points(tt.want[0])),
			style.New(style.KindMarginRight, style.Points(tt.want[1])),
			style.New(style.KindMarginBottom, style.Points(tt.want[2])),
			style.New(style.KindMarginLeft, style.Points(tt.want[3])),
		})
	}

	short := parseList(t, "margin: 10px")
	long := parseList(t, "margin-top: 10px; margin-right: 10px; margin-bottom: 10px; margin-left: 10px")
	sameAttrs(t, short, long)
}

func TestParseAnimationShorthand(t *testing.T) {
	m, diags := parseClasses(t, ".c1{animation: fade 2s 1s 3 reverse paused backwards;}", 7)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Err())
	}
	sameAttrs(t, m.Attrs, []style.Attribute{
		style.New(style.KindAnimationName, style.AnimationName{Names: []style.Text{style.NewText("fade")}, Scope: 7}),
		style.New(style.KindAnimationDuration, style.Times{2000}),
		style.New(style.KindAnimationTimingFunction, style.TimingFunctions{style.Linear}),
		style.New(style.KindAnimationIterationCount, style.IterationCounts{3}),
		style.New(style.KindAnimationDelay, style.Times{1000}),
		style.New(style.KindAnimationDirection, style.AnimationDirections{style.AnimationDirectionReverse}),
		style.New(style.KindAnimationFillMode, style.FillModes{style.FillModeBackwards}),
		style.New(style.KindAnimationPlayState, style.PlayStates{style.PlayStatePaused}),
	})
}

func TestParseAnimationInfinite(t *testing.T) {
	attrs := parseList(t, "animation: spin 1s infinite cubic-bezier(0.1, 0.7, 1.0, 0.1), pulse 10ms")
	if len(attrs) != 8 {
		t.Fatalf("got %d attributes, want 8", len(attrs))
	}
	counts := attrs[3].Value.(style.IterationCounts)
	if len(counts) != 2 || !math.IsInf(float64(counts[0]), 1) || counts[1] != 1 {
		t.Errorf("iteration counts = %v", counts)
	}
	timing := attrs[2].Value.(style.TimingFunctions)
	want := style.TimingFunctions{style.CubicBezier(0.1, 0.7, 1.0, 0.1), style.Linear}
	if !reflect.DeepEqual(timing, want) {
		t.Errorf("timing functions = %v, want %v", timing, want)
	}
	if d := attrs[1].Value.(style.Times); !reflect.DeepEqual(d, style.Times{1000, 10}) {
		t.Errorf("durations = %v", d)
	}
}

func TestParseAnimationLonghands(t *testing.T) {
	m, diags := parseClasses(t, `
	.c2677724672{
		animation-timing-function: ease-in, linear, step-end;
		animation-name: myanimation, myanimation1;
		animation-duration: 2s, 10ms ;
		animation-iteration-count: 10, infinite;
		animation-direction: reverse, alternate;
		animation-fill-mode: backwards, both;
		animation-play-state: running, paused ;
	}`, 42)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Err())
	}
	if len(m.Attrs) != 7 {
		t.Fatalf("got %d attributes, want 7: %v", len(m.Attrs), m.Attrs)
	}

	name := m.Attrs[1].Value.(style.AnimationName)
	if name.Scope != 42 {
		t.Errorf("animation-name scope = %d, want 42", name.Scope)
	}
	if len(name.Names) != 2 || name.Names[0].String() != "myanimation" || name.Names[1].String() != "myanimation1" {
		t.Errorf("animation names = %v", name.Names)
	}
	if d := m.Attrs[2].Value.(style.Times); !reflect.DeepEqual(d, style.Times{2000, 10}) {
		t.Errorf("durations = %v", d)
	}
	states := m.Attrs[6].Value.(style.PlayStates)
	if !reflect.DeepEqual(states, style.PlayStates{style.PlayStateRunning, style.PlayStatePaused}) {
		t.Errorf("play states = %v", states)
	}
}

func TestParseTimingFunctionLonghandRejectsUnknown(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	attrs, diags := p.ParseStyleList([]byte("animation-timing-function: bounce(1); opacity: 1"), 0)
	if diags.Values() != 1 {
		t.Fatalf("got %d value errors, want 1", diags.Values())
	}
	sameAttrs(t, attrs, []style.Attribute{style.New(style.KindOpacity, style.Float(1))})
}

func TestParseTransition(t *testing.T) {
	m, diags := parseClasses(t, `
	.c1363885129 {
		transition: left 500ms 5ms, bottom 2s;
	}
	.c2{
		transition-property: right,top;
		transition-duration: 2s, 10ms ;
		transition-delay: 1s, 5ms;
		transition-timing-function: ease, ease-in;
	}`, 0)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Err())
	}
	byClass := classAttrs(m)

	sameAttrs(t, byClass[1363885129], []style.Attribute{
		style.New(style.KindTransitionProperty, style.TransitionProperties{uint64(style.KindPositionLeft), uint64(style.KindPositionBottom)}),
		style.New(style.KindTransitionDuration, style.Times{500, 2000}),
		style.New(style.KindTransitionDelay, style.Times{5, 0}),
		style.New(style.KindTransitionTimingFunction, style.TimingFunctions{style.Linear, style.Linear}),
	})

	c2 := byClass[2]
	if len(c2) != 4 {
		t.Fatalf("got %d attributes for c2, want 4", len(c2))
	}
	props := c2[0].Value.(style.TransitionProperties)
	want := style.TransitionProperties{uint64(style.KindPositionRight), uint64(style.KindPositionTop)}
	if !reflect.DeepEqual(props, want) {
		t.Errorf("transition properties = %v, want %v", props, want)
	}
}

func TestParseTransitionGroupedProperty(t *testing.T) {
	attrs := parseList(t, "transition-property: margin, all")
	props := attrs[0].Value.(style.TransitionProperties)
	margin := uint64(style.KindMarginTop) | uint64(style.KindMarginRight) | uint64(style.KindMarginBottom) | uint64(style.KindMarginLeft)
	if len(props) != 2 || props[0] != margin || props[1] != style.TransitionAll {
		t.Errorf("transition properties = %v", props)
	}
}

func TestParseKeyframes(t *testing.T) {
	m, diags := parseClasses(t, "@keyframes X{0%{opacity:0}100%{opacity:1}}", 9)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Err())
	}
	if m.Keyframes.Scope != 9 {
		t.Errorf("keyframes scope = %d, want 9", m.Keyframes.Scope)
	}
	frames, ok := m.Keyframes.Frames(atom.Intern("X"))
	if !ok {
		t.Fatal("animation X not registered")
	}
	progress := frames.Progress()
	if len(progress) != 2 || progress[0].Value() != 0 || progress[1].Value() != 1 {
		t.Fatalf("progress keys = %v", progress)
	}
	sameAttrs(t, frames[notnan.Zero], []style.Attribute{style.New(style.KindOpacity, style.Float(0))})
	sameAttrs(t, frames[notnan.Must(1)], []style.Attribute{style.New(style.KindOpacity, style.Float(1))})
}

func TestParseKeyframesWithTransforms(t *testing.T) {
	m, diags := parseClasses(t, `
	@keyframes leftRightAnim {
		from {transform: translateY(600px); opacity: 0}
		75% {transform: translateX(0px)}
		to {transform: translateX(0px); opacity: 1}
		50% {opacity: }
	}
	.c1{ width: 98px }`, 0)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags.Err())
	}
	if len(m.Classes) != 1 {
		t.Fatalf("class after keyframes not parsed: %+v", m.Classes)
	}

	frames, ok := m.Keyframes.Frames(atom.Intern("leftRightAnim"))
	if !ok {
		t.Fatal("animation leftRightAnim not registered")
	}
	if n := len(frames.Progress()); n != 3 {
		t.Fatalf("got %d frames, want 3", n)
	}
	sameAttrs(t, frames[notnan.Must(0.75)], []style.Attribute{
		style.New(style.KindTransform, style.Transform{{Kind: style.FuncTranslateX, X: style.Px(0)}}),
	})
	sameAttrs(t, frames[notnan.Zero], []style.Attribute{
		style.New(style.KindTransform, style.Transform{{Kind: style.FuncTranslateY, Y: style.Px(600)}}),
		style.New(style.KindOpacity, style.Float(0)),
	})
}

func TestParseEmptyKeyframesNotRegistered(t *testing.T) {
	m, _ := parseClasses(t, "@keyframes empty { 0% {} }", 0)
	if m.Keyframes.Len() != 0 {
		t.Errorf("got %d animations, want none", m.Keyframes.Len())
	}
}

func TestParseGradientStopSpacing(t *testing.T) {
	attrs := parseList(t, "background-image: linear-gradient(red, green, green, blue);")
	if len(attrs) != 1 || attrs[0].Kind != style.KindBackgroundColor {
		t.Fatalf("unexpected attributes: %v", attrs)
	}
	c := attrs[0].Value.(style.Color)
	if c.Kind != style.ColorGradient {
		t.Fatalf("got colour kind %d, want gradient", c.Kind)
	}
	want := []float32{0, 1.0 / 3, 2.0 / 3, 1}
	if len(c.Gradient.Stops) != len(want) {
		t.Fatalf("got %d stops, want %d", len(c.Gradient.Stops), len(want))
	}
	for i, stop := range c.Gradient.Stops {
		if math.Abs(float64(stop.Position-want[i])) > 1e-6 {
			t.Errorf("stop %d at %v, want %v", i, stop.Position, want[i])
		}
	}
	if c.Gradient.Stops[0].Color != (style.RGBA{R: 1, A: 1}) || c.Gradient.Stops[3].Color != (style.RGBA{B: 1, A: 1}) {
		t.Errorf("unexpected end colours: %v", c.Gradient.Stops)
	}
}

func TestParseGradientWithAngle(t *testing.T) {
	attrs := parseList(t, "background: linear-gradient(20deg, 10% #555, 100% #fff)")
	c := attrs[0].Value.(style.Color)
	if c.Gradient.Direction != -70 {
		t.Errorf("direction = %v, want -70", c.Gradient.Direction)
	}
	if len(c.Gradient.Stops) != 2 || c.Gradient.Stops[0].Position != 0.1 || c.Gradient.Stops[1].Position != 1 {
		t.Errorf("unexpected stops: %v", c.Gradient.Stops)
	}
}

func TestParseBackgroundImageURL(t *testing.T) {
	for _, src := range []string{
		"background-image: url('a.png')",
		"background-image: url(a.png)",
	} {
		attrs := parseList(t, src)
		sameAttrs(t, attrs, []style.Attribute{style.New(style.KindBackgroundImage, style.NewText("a.png"))})
	}
}

func TestParseFilter(t *testing.T) {
	attrs := parseList(t, "filter: blur(2px) hsi(10,10,10)")
	sameAttrs(t, attrs, []style.Attribute{
		style.New(style.KindBlur, style.Float(2)),
		style.New(style.KindHsi, style.Hsi{HueRotate: 10.0 / 360, Saturate: 0.1, Brightness: 0.1}),
	})

	attrs = parseList(t, "filter: grayscale(50%) hue-rotate(270deg)")
	sameAttrs(t, attrs, []style.Attribute{
		style.New(style.KindHsi, style.Hsi{HueRotate: -90, Saturate: -50}),
	})
}

func TestParseFilterLaterChannelWins(t *testing.T) {
	tests := []struct {
		src  string
		want style.Hsi
	}{
		{"filter: hue-rotate(270deg) saturate(50%) grayscale(20%)", style.Hsi{HueRotate: -90, Saturate: -20}},
		{"filter: grayscale(20%) saturate(50%)", style.Hsi{Saturate: -50}},
		{"filter: brightness(150%) brightness(50%)", style.Hsi{Brightness: -50}},
	}
	for _, tt := range tests {
		attrs := parseList(t, tt.src)
		sameAttrs(t, attrs, []style.Attribute{style.New(style.KindHsi, tt.want)})
	}
}

func TestParseFilterIsAtomic(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	attrs, diags := p.ParseStyleList([]byte("filter: blur(2px) sepia(10%); opacity: 1"), 0)
	if diags.Values() != 1 {
		t.Fatalf("got %d value errors, want 1", diags.Values())
	}
	sameAttrs(t, attrs, []style.Attribute{style.New(style.KindOpacity, style.Float(1))})
}

func TestParseTextShadow(t *testing.T) {
	attrs := parseList(t, "text-shadow: rgb(255,0,0) 0px 0px 5px, 2px 2px #ff0000;")
	sameAttrs(t, attrs, []style.Attribute{
		style.New(style.KindTextShadow, style.TextShadows{
			{Blur: 5, Color: style.RGBA{R: 255.0 / 256, A: 1}},
			{H: 2, V: 2, Color: style.RGBA{R: 1, A: 1}},
		}),
	})
}

func TestParseTooManyTextShadows(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	_, diags := p.ParseStyleList([]byte("text-shadow: 1px 1px, 2px 2px, 3px 3px, 4px 4px, 5px 5px"), 0)
	if diags.Values() != 1 {
		t.Fatalf("got %d value errors, want 1", diags.Values())
	}
}

func TestParseTransform(t *testing.T) {
	attrs := parseList(t, "transform: scale(0.8,0.8) rotate(45deg)")
	sameAttrs(t, attrs, []style.Attribute{
		style.New(style.KindTransform, style.Transform{
			{Kind: style.FuncScale, A: 0.8, B: 0.8},
			{Kind: style.FuncRotateZ, A: 45},
		}),
	})

	attrs = parseList(t, "transform: scale(2)")
	sameAttrs(t, attrs, []style.Attribute{
		style.New(style.KindTransform, style.Transform{{Kind: style.FuncScale, A: 2, B: 2}}),
	})
}

func TestParseTransformStopsAtUnknownFunction(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	attrs, diags := p.ParseStyleList([]byte("transform: scale(2) foo(1) rotate(45deg)"), 0)
	sameAttrs(t, attrs, []style.Attribute{
		style.New(style.KindTransform, style.Transform{{Kind: style.FuncScale, A: 2, B: 2}}),
	})
	if diags.Values() != 0 {
		t.Errorf("accumulated functions reported as value error: %v", diags)
	}
	var ke *css.KeyError
	if len(diags) == 0 || !errors.As(diags[0], &ke) {
		t.Errorf("remainder after the transform is not a key error: %v", diags)
	}

	attrs, diags = p.ParseStyleList([]byte("transform: foo(1) scale(2); opacity: 1"), 0)
	sameAttrs(t, attrs, []style.Attribute{style.New(style.KindOpacity, style.Float(1))})
	if len(diags) != 1 || diags.Values() != 1 {
		t.Fatalf("got %v, want a single value error", diags)
	}
}

func TestParseGradientStopCapacity(t *testing.T) {
	attrs := parseList(t, "background: linear-gradient(red, orange, yellow, green, cyan, blue, indigo, violet, black)")
	c := attrs[0].Value.(style.Color)
	if len(c.Gradient.Stops) != 9 {
		t.Fatalf("got %d stops, want 9", len(c.Gradient.Stops))
	}
	if c.Gradient.Stops[8].Position != 1 || c.Gradient.Stops[8].Color != (style.RGBA{A: 1}) {
		t.Errorf("unexpected last stop %v", c.Gradient.Stops[8])
	}

	src := "background: linear-gradient(" + strings.TrimSuffix(strings.Repeat("red, ", style.MaxGradientStops+1), ", ") + ")"
	p := css.NewParser(zap.NewNop())
	attrs, diags := p.ParseStyleList([]byte(src), 0)
	if len(attrs) != 0 || diags.Values() != 1 {
		t.Fatalf("over capacity gradient: attrs %v, diagnostics %v", attrs, diags)
	}
}

func TestParseClipPath(t *testing.T) {
	tests := []struct {
		src  string
		want style.Shape
	}{
		{"clip-path: circle(10px)", style.Shape{Kind: style.ShapeCircle, Radius: style.Px(10), Center: style.DefaultCenter}},
		{"clip-path: circle(10% at 50px)", style.Shape{
			Kind: style.ShapeCircle, Radius: style.Pct(0.1),
			Center: style.Center{X: style.Px(50), Y: style.Px(50)},
		}},
		{"clip-path: ellipse(10% 20px at 50px 20%)", style.Shape{
			Kind: style.ShapeEllipse, Radius: style.Pct(0.1), RadiusY: style.Px(20),
			Center: style.Center{X: style.Px(50), Y: style.Pct(0.2)},
		}},
	}
	for _, tt := range tests {
		attrs := parseList(t, tt.src)
		sameAttrs(t, attrs, []style.Attribute{style.New(style.KindClipPath, tt.want)})
	}

	for _, src := range []string{
		"clip-path: inset(30px)",
		"clip-path: inset(30px 20% 10% 50% round 20px)",
		"clip-path: sector(30deg 20deg 20px at 50px 50px)",
	} {
		attrs := parseList(t, src)
		if len(attrs) != 1 || attrs[0].Kind != style.KindClipPath {
			t.Errorf("%s: unexpected attributes %v", src, attrs)
		}
	}
}

func TestParseBorderRadius(t *testing.T) {
	px, pct := style.Px, style.Pct
	tests := []struct {
		src  string
		want style.BorderRadius
	}{
		{"border-radius: 10% / 14% 9%;", style.BorderRadius{
			X: [4]style.LengthUnit{pct(0.1), pct(0.1), pct(0.1), pct(0.1)},
			Y: [4]style.LengthUnit{pct(0.14), pct(0.09), pct(0.14), pct(0.09)},
		}},
		{"border-radius: 1px 2px 3px;", style.BorderRadius{
			X: [4]style.LengthUnit{px(1), px(2), px(3), px(2)},
			Y: [4]style.LengthUnit{px(1), px(2), px(3), px(2)},
		}},
		{"border-radius: 4px / 5px 6px 7px 8px", style.BorderRadius{
			X: [4]style.LengthUnit{px(4), px(4), px(4), px(4)},
			Y: [4]style.LengthUnit{px(5), px(6), px(7), px(8)},
		}},
	}
	for _, tt := range tests {
		attrs := parseList(t, tt.src)
		sameAttrs(t, attrs, []style.Attribute{style.New(style.KindBorderRadius, tt.want)})
	}

	// the declaration after a radius without "/" stays intact
	attrs := parseList(t, "border-radius: 3px; width: 1px")
	sameAttrs(t, attrs, []style.Attribute{
		style.New(style.KindBorderRadius, style.BorderRadius{
			X: [4]style.LengthUnit{px(3), px(3), px(3), px(3)},
			Y: [4]style.LengthUnit{px(3), px(3), px(3), px(3)},
		}),
		style.New(style.KindWidth, style.Points(1)),
	})
}

func TestParseBorderImageSlice(t *testing.T) {
	m := notnan.Must
	tests := []struct {
		src  string
		want style.BorderImageSlice
	}{
		{"border-image-slice: 10%", style.BorderImageSlice{Top: m(0.1), Right: m(0.1), Bottom: m(0.1), Left: m(0.1)}},
		{"border-image-slice: 10% 20% fill", style.BorderImageSlice{Top: m(0.1), Right: m(0.2), Bottom: m(0.1), Left: m(0.2), Fill: true}},
		{"border-image-slice: 10% 20% 30%", style.BorderImageSlice{Top: m(0.1), Right: m(0.2), Bottom: m(0.3), Left: m(0.2)}},
		{"border-image-slice: 10% 20% 30% 40% fill", style.BorderImageSlice{Top: m(0.1), Right: m(0.2), Bottom: m(0.3), Left: m(0.4), Fill: true}},
		{"border-image-slice: fill", style.BorderImageSlice{Fill: true}},
	}
	for _, tt := range tests {
		attrs := parseList(t, tt.src)
		sameAttrs(t, attrs, []style.Attribute{style.New(style.KindBorderImageSlice, tt.want)})
	}
}

func TestParseWillChangeTransform(t *testing.T) {
	m, diags := parseClasses(t, `
	.c1363885129{
		width:200px;height:100px;background-color:#45f518;transform: scale(0.6);will-change-transform
	}`, 0)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Err())
	}
	if n := len(m.Attrs); n != 5 {
		t.Fatalf("got %d attributes, want 5", n)
	}
	last := m.Attrs[4]
	if last.Kind != style.KindTransformWillChange {
		t.Errorf("last attribute is %v, want will-change", last.Kind)
	}
}

func TestParseContent(t *testing.T) {
	m, diags := parseClasses(t, `.c1{ content: "zzzfff", }`, 0)
	sameAttrs(t, m.Attrs, []style.Attribute{style.New(style.KindTextContent, style.NewText("zzzfff"))})
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	var ke *css.KeyError
	if !errors.As(diags[0], &ke) {
		t.Errorf("diagnostic is %T, want *css.KeyError", diags[0].Err)
	}

	attrs := parseList(t, "content: 'aaaaa';")
	sameAttrs(t, attrs, []style.Attribute{style.New(style.KindTextContent, style.NewText("aaaaa"))})
}

func TestParseAsImage(t *testing.T) {
	m, diags := parseClasses(t, `
	.c1363885129{ as-image: none; }
	.c2{ as-image: advise; }
	.c3{ as-image: force; }`, 0)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags.Err())
	}
	sameAttrs(t, m.Attrs, []style.Attribute{
		style.New(style.KindAsImage, style.AsImageNone),
		style.New(style.KindAsImage, style.AsImageAdvise),
		style.New(style.KindAsImage, style.AsImageForce),
	})
}

func TestParseUnknownProperty(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	attrs, diags := p.ParseStyleList([]byte("left: 20px; colour: red"), 0)
	sameAttrs(t, attrs, []style.Attribute{style.New(style.KindPositionLeft, style.Points(20))})
	if len(diags) != 1 || diags.Values() != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
}
