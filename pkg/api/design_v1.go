// pkg/api/design_v1.go
package api

// TagV1 describes the chosen headloop tag for one primer.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type TagV1 struct {
	Seq             string  `json:"seq"`
	Offset          int     `json:"offset"`
	Complement      bool    `json:"complement"`
	TmC             float64 `json:"tm_c"`
	DiffC           float64 `json:"diff_c"`
	WithinTolerance bool    `json:"within_tolerance"`
}

// PrimerV1 is one side of a finished design: the full tagged sequence plus
// the original primer and its Tm.
type PrimerV1 struct {
	Seq      string  `json:"seq"` // tag + primer, 5'→3'
	Primer   string  `json:"primer"`
	PrimerTm float64 `json:"primer_tm_c"`
	Tag      TagV1   `json:"tag"`
	Warning  string  `json:"warning,omitempty"`
}

// DesignV1 is the stable JSON schema for a headloop design run.
type DesignV1 struct {
	Orientation string   `json:"orientation"`
	TagLength   int      `json:"tag_length"`
	ToleranceC  float64  `json:"tolerance_c"`
	Forward     PrimerV1 `json:"forward"`
	Reverse     PrimerV1 `json:"reverse"`
}
