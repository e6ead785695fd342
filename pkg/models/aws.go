package models

import (
	"sort"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// OperatingSystem is a key of the per-region rates map, matched verbatim
type OperatingSystem string

const (
	Linux   OperatingSystem = "Linux"
	Windows OperatingSystem = "Windows"
)

// AdvisorData - the spot advisor dataset as published by AWS
type AdvisorData struct {
	Ranges        []Range                 `json:"ranges"`
	InstanceTypes map[string]InstanceType `json:"instance_types"` //nolint:tagliatelle
	Regions       map[string]RegionRates  `json:"spot_advisor"`   //nolint:tagliatelle
}

// RegionRates - operating system -> instance type -> spot info
type RegionRates map[OperatingSystem]map[string]SpotInfo

// Range interruption range, indexed by interruption code
type Range struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Dots  int    `json:"dots"`
	Max   int    `json:"max"`
}

// SpotInfo interruption code and savings over on-demand for one instance type
type SpotInfo struct {
	Range   int `json:"r"`
	Savings int `json:"s"`
}

// InstanceType instance type details: vCPU cores, memory, can run in EMR.
// Attributes keeps every field of the source entry, known or not.
type InstanceType struct {
	Cores      int
	Emr        bool
	RAM        float32
	Attributes map[string]interface{}
}

type instanceType struct {
	Cores int     `json:"cores"`
	Emr   bool    `json:"emr"`
	RAM   float32 `json:"ram_gb"` //nolint:tagliatelle
}

func (t *InstanceType) UnmarshalJSON(b []byte) error {
	var it instanceType
	if err := sonic.Unmarshal(b, &it); err != nil {
		return err
	}
	var attrs map[string]interface{}
	if err := sonic.Unmarshal(b, &attrs); err != nil {
		return err
	}
	*t = InstanceType{Cores: it.Cores, Emr: it.Emr, RAM: it.RAM, Attributes: attrs}
	return nil
}

func (t InstanceType) MarshalJSON() ([]byte, error) {
	return JSON.Marshal(t.fields())
}

// fields flattens the entry back into its source shape
func (t InstanceType) fields() map[string]interface{} {
	m := make(map[string]interface{}, len(t.Attributes)+3)
	for k, v := range t.Attributes {
		m[k] = v
	}
	m["cores"] = t.Cores
	m["emr"] = t.Emr
	m["ram_gb"] = t.RAM
	return m
}

// Clone returns a copy that shares nothing mutable with t
func (t InstanceType) Clone() InstanceType {
	c := t
	if t.Attributes != nil {
		c.Attributes = make(map[string]interface{}, len(t.Attributes))
		for k, v := range t.Attributes {
			c.Attributes[k] = v
		}
	}
	return c
}

// Validate checks the sections are present and every interruption code
// indexes Ranges.
func (d *AdvisorData) Validate() error {
	if d.Ranges == nil {
		return errors.New("missing ranges section")
	}
	if d.InstanceTypes == nil {
		return errors.New("missing instance_types section")
	}
	if d.Regions == nil {
		return errors.New("missing spot_advisor section")
	}
	for name, it := range d.InstanceTypes {
		if it.Cores < 0 {
			return errors.Errorf("instance type %s: negative cores %d", name, it.Cores)
		}
	}
	for region, byOS := range d.Regions {
		for os, rates := range byOS {
			for instance, info := range rates {
				if info.Range < 0 || info.Range >= len(d.Ranges) {
					return errors.Errorf("%s/%s/%s: interruption code %d out of range [0,%d)",
						region, os, instance, info.Range, len(d.Ranges))
				}
			}
		}
	}
	return nil
}

// RegionNames returns every region key, sorted
func (d *AdvisorData) RegionNames() []string {
	names := make([]string, 0, len(d.Regions))
	for k := range d.Regions {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// InstanceNames returns every instance type identifier, sorted
func (d *AdvisorData) InstanceNames() []string {
	names := make([]string, 0, len(d.InstanceTypes))
	for k := range d.InstanceTypes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
