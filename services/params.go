package services

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Field names one of the eleven estimator inputs. The value doubles as the
// CLI flag and job-file key.
type Field string

const (
	FieldLength           Field = "length"
	FieldHeight           Field = "height"
	FieldSpacing          Field = "spacing"
	FieldStrutInterval    Field = "strut-interval"
	FieldStrutCount       Field = "strut-count"
	FieldMeshRollLength   Field = "mesh-roll"
	FieldBarbedRows       Field = "barbed-rows"
	FieldBarbedRollLength Field = "barbed-roll"
	FieldWireThickness    Field = "wire-thickness"
	FieldWeightConstant   Field = "weight-constant"
	FieldMeshEye          Field = "mesh-eye"
)

// Initial edit values shown to the user.
const (
	DefaultLength           = "300"
	DefaultHeight           = "1.5"
	DefaultSpacing          = "3.5"
	DefaultStrutInterval    = "15"
	DefaultStrutCount       = "2"
	DefaultMeshRollLength   = "20"
	DefaultBarbedRows       = "3"
	DefaultBarbedRollLength = "250"
	DefaultWireThickness    = "2.5"
	DefaultWeightConstant   = "1.3"
	DefaultMeshEye          = "6.5"
)

// Input holds the raw edit strings for every estimator parameter.
type Input struct {
	Length           string
	Height           string
	Spacing          string
	StrutInterval    string
	StrutCount       string
	MeshRollLength   string
	BarbedRows       string
	BarbedRollLength string
	WireThickness    string
	WeightConstant   string
	MeshEye          string
}

// Params is the parsed, numeric form of Input.
type Params struct {
	Length           float64
	Height           float64
	Spacing          float64
	StrutInterval    float64
	StrutCount       float64
	MeshRollLength   float64
	BarbedRows       float64
	BarbedRollLength float64
	WireThickness    float64
	WeightConstant   float64
	MeshEye          float64
}

// FieldSpec describes a field for listings and flag help.
type FieldSpec struct {
	Field   Field
	Label   string
	Default string
}

var fieldSpecs = []FieldSpec{
	{FieldLength, "Toplam arazi uzunluğu (m)", DefaultLength},
	{FieldHeight, "Çit yüksekliği (m)", DefaultHeight},
	{FieldSpacing, "Direk aralığı (m)", DefaultSpacing},
	{FieldStrutInterval, "Payanda sıklığı (direk)", DefaultStrutInterval},
	{FieldStrutCount, "Payanda adedi (her sefer)", DefaultStrutCount},
	{FieldMeshRollLength, "Kafes tel top uzunluğu (m)", DefaultMeshRollLength},
	{FieldBarbedRows, "Dikenli tel sırası", DefaultBarbedRows},
	{FieldBarbedRollLength, "Dikenli tel top uzunluğu (m)", DefaultBarbedRollLength},
	{FieldWireThickness, "Tel kalınlığı (mm)", DefaultWireThickness},
	{FieldWeightConstant, "Sabit çarpan", DefaultWeightConstant},
	{FieldMeshEye, "Göz aralığı (cm)", DefaultMeshEye},
}

// FieldSpecs returns every field in display order.
func FieldSpecs() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}

// DefaultInput returns the initial edit values.
func DefaultInput() Input {
	return Input{
		Length:           DefaultLength,
		Height:           DefaultHeight,
		Spacing:          DefaultSpacing,
		StrutInterval:    DefaultStrutInterval,
		StrutCount:       DefaultStrutCount,
		MeshRollLength:   DefaultMeshRollLength,
		BarbedRows:       DefaultBarbedRows,
		BarbedRollLength: DefaultBarbedRollLength,
		WireThickness:    DefaultWireThickness,
		WeightConstant:   DefaultWeightConstant,
		MeshEye:          DefaultMeshEye,
	}
}

func (in *Input) ref(f Field) *string {
	switch f {
	case FieldLength:
		return &in.Length
	case FieldHeight:
		return &in.Height
	case FieldSpacing:
		return &in.Spacing
	case FieldStrutInterval:
		return &in.StrutInterval
	case FieldStrutCount:
		return &in.StrutCount
	case FieldMeshRollLength:
		return &in.MeshRollLength
	case FieldBarbedRows:
		return &in.BarbedRows
	case FieldBarbedRollLength:
		return &in.BarbedRollLength
	case FieldWireThickness:
		return &in.WireThickness
	case FieldWeightConstant:
		return &in.WeightConstant
	case FieldMeshEye:
		return &in.MeshEye
	}
	return nil
}

// Get returns the edit string for f. ok is false for an unknown field.
func (in Input) Get(f Field) (value string, ok bool) {
	p := in.ref(f)
	if p == nil {
		return "", false
	}
	return *p, true
}

// With returns a copy of in with f set to value. ok is false for an unknown
// field, in which case the copy equals in.
func (in Input) With(f Field, value string) (out Input, ok bool) {
	out = in
	p := out.ref(f)
	if p == nil {
		return in, false
	}
	*p = value
	return out, true
}

// Parse converts the edit strings to numbers. Length, height and spacing fall
// back to 0 so a cleared geometry field yields no results; the ratios fall
// back to their defaults.
func (in Input) Parse() Params {
	return Params{
		Length:           parseDecimal(in.Length, 0),
		Height:           parseDecimal(in.Height, 0),
		Spacing:          parseDecimal(in.Spacing, 0),
		StrutInterval:    parseDecimal(in.StrutInterval, 15),
		StrutCount:       parseDecimal(in.StrutCount, 2),
		MeshRollLength:   parseDecimal(in.MeshRollLength, 20),
		BarbedRows:       parseDecimal(in.BarbedRows, 3),
		BarbedRollLength: parseDecimal(in.BarbedRollLength, 250),
		WireThickness:    parseDecimal(in.WireThickness, 2.5),
		WeightConstant:   parseDecimal(in.WeightConstant, 1.3),
		MeshEye:          parseDecimal(in.MeshEye, 6.5),
	}
}

// parseDecimal parses s, accepting a comma decimal separator. Blank or
// malformed input yields fallback.
func parseDecimal(s string, fallback float64) float64 {
	s = strings.TrimSpace(NormalizeEdit(s))
	if s == "" {
		return fallback
	}
	v, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
