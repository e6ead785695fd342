package options

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"spotadvisor/pkg/known"
	"spotadvisor/pkg/models"
)

type SpotAdvisorOptions struct {
	Region       string
	Os           string
	FamilyList   string
	ProcFamily   string
	MinCpus      int
	MaxCpus      int
	MaxIntCode   int
	Sort         string
	Format       string
	Pretty       bool
	AdvisorData  string
	Timeout      time.Duration
	RegionList   bool
	InstanceList bool
	Verbose      bool
}

func NewSpotAdvisorOptions() *SpotAdvisorOptions {
	source := known.SpotAdvisorJSONURL
	if v, ok := os.LookupEnv(known.SpotAdvisorDataEnv); ok && v != "" {
		source = v
	}
	return &SpotAdvisorOptions{
		Region:      known.DefaultRegion,
		Os:          string(models.Linux),
		FamilyList:  known.FamilyAny,
		ProcFamily:  known.ProcAny,
		MaxIntCode:  known.DefaultMaxInterruption,
		Sort:        known.SortByName,
		Format:      known.TableFormat,
		AdvisorData: source,
		Timeout:     known.DefaultTimeout,
	}
}

func (o *SpotAdvisorOptions) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.Region, "region", o.Region, "AWS region")
	flags.StringVar(&o.Os, "os", o.Os, "operating system: Linux|Windows")
	flags.StringVar(&o.FamilyList, "familylist", o.FamilyList, "comma separated instance family patterns (RE2), a preset (ppo) or any")
	flags.StringVar(&o.FamilyList, "family-pattern", o.FamilyList, "alias of --familylist")
	flags.StringVar(&o.ProcFamily, "procfamily", o.ProcFamily, "processor family: "+strings.Join(sortedFamilies(known.DefaultTaxonomy), "|"))
	flags.IntVar(&o.MinCpus, "mincpus", o.MinCpus, "filter: minimal vCPU cores")
	flags.IntVar(&o.MaxCpus, "maxcpus", o.MaxCpus, "filter: maximal vCPU cores, 0 for unbounded")
	flags.IntVar(&o.MaxIntCode, "maxintcode", o.MaxIntCode, "maximum interruption code: 0=<5%, 1=5-10%, 2=10-15%, 3=15-20%, 4=any")
	flags.StringVar(&o.Sort, "sort", o.Sort, "sort results by name|avail|vcpucount")
	flags.StringVar(&o.Format, "format", o.Format, "output format: table|csv|instancelist|json|grid")
	flags.BoolVar(&o.Pretty, "pretty", o.Pretty, "indent json output, only with --format json")
	flags.StringVar(&o.AdvisorData, "advisordata", o.AdvisorData, "URL or path of the spot advisor data file (env "+known.SpotAdvisorDataEnv+")")
	flags.DurationVar(&o.Timeout, "timeout", o.Timeout, "advisor data download timeout")
	flags.BoolVar(&o.RegionList, "regionlist", o.RegionList, "list the regions of the advisor data and exit")
	flags.BoolVar(&o.InstanceList, "instancelist", o.InstanceList, "list the instance types of the advisor data and exit")
	flags.BoolVarP(&o.Verbose, "verbose", "v", o.Verbose, "debug logging")
}

// Validate checks the options the selection engine does not check itself
func (o *SpotAdvisorOptions) Validate() error {
	switch models.OperatingSystem(o.Os) {
	case models.Linux, models.Windows:
	default:
		return errors.Errorf("invalid --os %q, must be Linux or Windows", o.Os)
	}
	if err := validateProcFamily(o.ProcFamily, known.DefaultTaxonomy); err != nil {
		return err
	}
	switch o.Sort {
	case known.SortByName, known.SortByAvail, known.SortByVCPUCount:
	default:
		return errors.Errorf("invalid --sort %q, must be name|avail|vcpucount", o.Sort)
	}
	switch o.Format {
	case known.TableFormat, known.CSVFormat, known.InstanceListFormat, known.JSONFormat, known.GridFormat:
	default:
		return errors.Errorf("invalid --format %q, must be table|csv|instancelist|json|grid", o.Format)
	}
	if o.MaxIntCode < 0 || o.MaxIntCode > known.DefaultMaxInterruption {
		return errors.Errorf("invalid --maxintcode %d, must be in [0-%d]", o.MaxIntCode, known.DefaultMaxInterruption)
	}
	if o.MinCpus < 0 || o.MaxCpus < 0 {
		return errors.New("--mincpus and --maxcpus must not be negative")
	}
	if o.Pretty && o.Format != known.JSONFormat {
		return errors.New("--pretty is only usable with --format json")
	}
	if o.RegionList && o.InstanceList {
		return errors.New("--regionlist and --instancelist are mutually exclusive")
	}
	if o.AdvisorData == "" {
		return errors.New("--advisordata must not be empty")
	}
	if o.Timeout <= 0 {
		return errors.New("--timeout must be positive")
	}
	return nil
}

// sortedFamilies lists the processor families of taxonomy, "any" first
func sortedFamilies(taxonomy known.Taxonomy) []string {
	families := taxonomy.Families()
	sort.Strings(families)
	return append([]string{known.ProcAny}, families...)
}

func validateProcFamily(family string, taxonomy known.Taxonomy) error {
	families := sortedFamilies(taxonomy)
	for _, f := range families {
		if f == strings.ToLower(family) {
			return nil
		}
	}
	return errors.Errorf("invalid --procfamily %q, must be %s", family, strings.Join(families, "|"))
}

// Query builds the selection query; call Validate first
func (o *SpotAdvisorOptions) Query(taxonomy known.Taxonomy) models.Query {
	return models.Query{
		Region:          strings.ToLower(o.Region),
		OS:              models.OperatingSystem(o.Os),
		Family:          models.ParseFamilyPattern(o.FamilyList, taxonomy.Presets),
		Processor:       strings.ToLower(o.ProcFamily),
		MinCores:        o.MinCpus,
		MaxCores:        o.MaxCpus,
		MaxInterruption: o.MaxIntCode,
		Sort:            o.Sort,
	}
}
