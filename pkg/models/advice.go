package models

import "github.com/bytedance/sonic"

// JSON encodes records the way the advisor data is published: sorted keys,
// no HTML escaping, so labels such as "<5%" stay literal.
var JSON = sonic.Config{
	SortMapKeys:      true,
	EscapeHTML:       false,
	CompactMarshaler: true,
}.Froze()

// Record - one eligible instance type enriched with its interruption range
type Record struct {
	Region   string
	OS       OperatingSystem
	Instance string
	Code     int
	Range    Range
	Savings  int
	Info     InstanceType
}

// MarshalJSON emits the source attributes of the instance type plus
// instance_type, interruption_rate and interruption_text. Savings is
// display only and not part of the JSON form.
func (r Record) MarshalJSON() ([]byte, error) {
	m := r.Info.fields()
	m["instance_type"] = r.Instance
	m["interruption_rate"] = r.Code
	m["interruption_text"] = r.Range.Label
	return JSON.Marshal(m)
}
