package aws

import (
	"sort"
	"strings"

	"spotadvisor/pkg/known"
	"spotadvisor/pkg/models"
)

// Selector filters and ranks instance types of an advisor dataset.
// It holds no mutable state and never modifies the dataset it is given,
// so one Selector may serve concurrent callers sharing a dataset.
type Selector struct {
	taxonomy known.Taxonomy
}

// NewSelector returns a Selector resolving processor families and family
// presets through taxonomy.
func NewSelector(taxonomy known.Taxonomy) *Selector {
	return &Selector{taxonomy: taxonomy}
}

// Select returns every instance type matching all filters of q, ordered by
// q.Sort. No match is an empty result, not an error.
func (s *Selector) Select(data *models.AdvisorData, q models.Query) ([]models.Record, error) {
	region, ok := lookupRegion(data, q.Region)
	if !ok {
		return nil, &SelectionError{Kind: ErrUnknownRegion, Value: q.Region}
	}
	family, err := compileFamily(q.Family, s.taxonomy.Presets)
	if err != nil {
		return nil, err
	}
	proc, err := compileProcessor(q.Processor, s.taxonomy)
	if err != nil {
		return nil, err
	}
	sorter, err := sorterFor(q.Sort)
	if err != nil {
		return nil, err
	}

	rates := data.Regions[region][q.OS]
	result := make([]models.Record, 0)
	// sorted iteration keeps ties in a reproducible order
	for _, instance := range data.InstanceNames() {
		prefix, _, _ := strings.Cut(instance, ".")
		if !proc.match(prefix) || !family.match(prefix) {
			continue
		}
		adv, ok := rates[instance]
		if !ok {
			continue
		}
		info := data.InstanceTypes[instance]
		if info.Cores < q.MinCores || (q.MaxCores != 0 && info.Cores > q.MaxCores) {
			continue
		}
		if adv.Range > q.MaxInterruption {
			continue
		}
		var rng models.Range
		if adv.Range >= 0 && adv.Range < len(data.Ranges) {
			rng = data.Ranges[adv.Range]
		}
		result = append(result, models.Record{
			Region:   region,
			OS:       q.OS,
			Instance: instance,
			Code:     adv.Range,
			Range:    rng,
			Savings:  adv.Savings,
			Info:     info.Clone(),
		})
	}

	sort.Stable(sorter(result))
	return result, nil
}

// lookupRegion matches region against the dataset keys ignoring case
func lookupRegion(data *models.AdvisorData, region string) (string, bool) {
	region = strings.ToLower(strings.TrimSpace(region))
	if _, ok := data.Regions[region]; ok {
		return region, true
	}
	for _, name := range data.RegionNames() {
		if strings.EqualFold(name, region) {
			return name, true
		}
	}
	return "", false
}
