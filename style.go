package thicket

// Property names, as used by TransitionConfig.Properties.
const (
	PropColor           = "color"
	PropBackgroundColor = "background-color"
	PropBorderColor     = "border-color"
	PropWidth           = "width"
	PropHeight          = "height"
	PropPadding         = "padding"
	PropMargin          = "margin"
	PropFont            = "font"
	PropFontSize        = "font-size"
	PropFontStyle       = "font-style"
	PropTextAlign       = "text-align"
	PropBorderWidth     = "border-width"
	PropBorderRadius    = "border-radius"
)

// AllProperties lists every style property name in declaration order.
var AllProperties = []string{
	PropColor, PropBackgroundColor, PropBorderColor,
	PropWidth, PropHeight, PropPadding, PropMargin,
	PropFont, PropFontSize, PropFontStyle, PropTextAlign,
	PropBorderWidth, PropBorderRadius,
}

// Style is a bag of tri-state properties. The zero Style sets nothing.
//
// StyleSetID names a StyleSet in the active theme. When set, the style-set's
// variant for the element's interaction state is resolved first and this
// style is merged on top of it.
type Style struct {
	StyleSetID string

	Color           StyleProperty[Color]
	BackgroundColor StyleProperty[Color]
	BorderColor     StyleProperty[Color]

	Width   StyleProperty[float64]
	Height  StyleProperty[float64]
	Padding StyleProperty[Insets]
	Margin  StyleProperty[Insets]

	Font      StyleProperty[string]
	FontSize  StyleProperty[float64]
	FontStyle StyleProperty[FontStyle]
	TextAlign StyleProperty[TextAlign]

	BorderWidth  StyleProperty[float64]
	BorderRadius StyleProperty[float64]
}

// Merge overlays over on s property by property; over wins wherever it is
// set.
func (s Style) Merge(over Style) Style {
	out := Style{
		StyleSetID: s.StyleSetID,

		Color:           s.Color.Merge(over.Color),
		BackgroundColor: s.BackgroundColor.Merge(over.BackgroundColor),
		BorderColor:     s.BorderColor.Merge(over.BorderColor),

		Width:   s.Width.Merge(over.Width),
		Height:  s.Height.Merge(over.Height),
		Padding: s.Padding.Merge(over.Padding),
		Margin:  s.Margin.Merge(over.Margin),

		Font:      s.Font.Merge(over.Font),
		FontSize:  s.FontSize.Merge(over.FontSize),
		FontStyle: s.FontStyle.Merge(over.FontStyle),
		TextAlign: s.TextAlign.Merge(over.TextAlign),

		BorderWidth:  s.BorderWidth.Merge(over.BorderWidth),
		BorderRadius: s.BorderRadius.Merge(over.BorderRadius),
	}
	if over.StyleSetID != "" {
		out.StyleSetID = over.StyleSetID
	}
	return out
}

// Equal compares two styles property by property.
func (s Style) Equal(o Style) bool {
	return s.StyleSetID == o.StyleSetID &&
		s.Color.Equal(o.Color) &&
		s.BackgroundColor.Equal(o.BackgroundColor) &&
		s.BorderColor.Equal(o.BorderColor) &&
		s.Width.Equal(o.Width) &&
		s.Height.Equal(o.Height) &&
		s.Padding.Equal(o.Padding) &&
		s.Margin.Equal(o.Margin) &&
		s.Font.Equal(o.Font) &&
		s.FontSize.Equal(o.FontSize) &&
		s.FontStyle.Equal(o.FontStyle) &&
		s.TextAlign.Equal(o.TextAlign) &&
		s.BorderWidth.Equal(o.BorderWidth) &&
		s.BorderRadius.Equal(o.BorderRadius)
}

// Resolve reads every property against src. Unset properties and missing
// references take the zero value.
func (s Style) Resolve(src ThemePropertySource) ResolvedStyle {
	return ResolvedStyle{
		Color:           s.Color.Resolve(src, Color{}),
		BackgroundColor: s.BackgroundColor.Resolve(src, Color{}),
		BorderColor:     s.BorderColor.Resolve(src, Color{}),
		Width:           s.Width.Resolve(src, 0),
		Height:          s.Height.Resolve(src, 0),
		Padding:         s.Padding.Resolve(src, Insets{}),
		Margin:          s.Margin.Resolve(src, Insets{}),
		Font:            s.Font.Resolve(src, ""),
		FontSize:        s.FontSize.Resolve(src, 0),
		FontStyle:       s.FontStyle.Resolve(src, FontStyleNormal),
		TextAlign:       s.TextAlign.Resolve(src, TextAlignLeft),
		BorderWidth:     s.BorderWidth.Resolve(src, 0),
		BorderRadius:    s.BorderRadius.Resolve(src, 0),
	}
}

// ResolvedStyle holds the concrete values renderers draw with. It is
// comparable with ==.
type ResolvedStyle struct {
	Color           Color
	BackgroundColor Color
	BorderColor     Color

	Width   float64
	Height  float64
	Padding Insets
	Margin  Insets

	Font      string
	FontSize  float64
	FontStyle FontStyle
	TextAlign TextAlign

	BorderWidth  float64
	BorderRadius float64
}
