package aws

import (
	"sort"
	"strings"

	"spotadvisor/pkg/known"
	"spotadvisor/pkg/models"
)

// ByInstance implements sort.Interface based on the Instance field
type ByInstance []models.Record

func (a ByInstance) Len() int           { return len(a) }
func (a ByInstance) Less(i, j int) bool { return strings.Compare(a[i].Instance, a[j].Instance) == -1 }
func (a ByInstance) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }

// ByRange implements sort.Interface based on the interruption code, lowest first
type ByRange []models.Record

func (a ByRange) Len() int           { return len(a) }
func (a ByRange) Less(i, j int) bool { return a[i].Code < a[j].Code }
func (a ByRange) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }

// ByCores implements sort.Interface based on vCPU count, highest first
type ByCores []models.Record

func (a ByCores) Len() int           { return len(a) }
func (a ByCores) Less(i, j int) bool { return a[i].Info.Cores > a[j].Info.Cores }
func (a ByCores) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }

// sorterFor returns the ordering for key; the empty key sorts by name
func sorterFor(key string) (func([]models.Record) sort.Interface, error) {
	switch key {
	case "", known.SortByName:
		return func(r []models.Record) sort.Interface { return ByInstance(r) }, nil
	case known.SortByAvail:
		return func(r []models.Record) sort.Interface { return ByRange(r) }, nil
	case known.SortByVCPUCount:
		return func(r []models.Record) sort.Interface { return ByCores(r) }, nil
	default:
		return nil, &SelectionError{Kind: ErrInvalidSort, Value: key}
	}
}
