package known

import "time"

const (
	SpotAdvisorJSONURL = "https://spot-bid-advisor.s3.amazonaws.com/spot-advisor-data.json"
	// SpotAdvisorDataEnv overrides the default advisor data location
	SpotAdvisorDataEnv = "SPOT_ADVISOR_DATA"
	DefaultTimeout     = 10 * time.Second
)

const (
	DefaultRegion          = "eu-west-1"
	DefaultMaxInterruption = 4
)

const (
	TableFormat        = "table"
	CSVFormat          = "csv"
	InstanceListFormat = "instancelist"
	JSONFormat         = "json"
	GridFormat         = "grid"
)

const (
	SortByName      = "name"
	SortByAvail     = "avail"
	SortByVCPUCount = "vcpucount"
)

const (
	ProcAny      = "any"
	ProcAMD      = "amd"
	ProcGraviton = "graviton"
	ProcIntel    = "intel"
)

const (
	// FamilyAny and FamilyAll both disable family filtering
	FamilyAny = "any"
	FamilyAll = "all"
)

// ppoPattern covers generations 3 to 6 of the m, c and r families.
const ppoPattern = `^(m[3-6].*|c[3-6].*|r[3-6].*)$`
