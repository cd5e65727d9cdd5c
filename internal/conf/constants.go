package conf

// DefaultUniverse - Max key value used by the workload, employee ids are drawn from [1, DefaultUniverse]
const DefaultUniverse int64 = 10_000_000

// SalaryStep - Salaries are whole multiples of this amount
const SalaryStep int64 = 1000

// SalaryMin - Lowest salary the workload draws
const SalaryMin int64 = 10_000

// SalaryMax - Highest salary the workload draws
const SalaryMax int64 = 10_000_000

// SearchWeight - Share of operations that are searches
const SearchWeight float64 = 0.50

// InsertWeight - Share of operations that are inserts
const InsertWeight float64 = 0.40

// DeleteWeight - Share of operations that are deletes
const DeleteWeight float64 = 0.10

// ExistingKeySearchShare - Share of searches aimed at a key known to be live, the rest draw a fresh key
const ExistingKeySearchShare float64 = 0.5

// DefaultTrials - Number of trials per parameter combination
const DefaultTrials int = 50

// DefaultOperations - Number of operations per trial
const DefaultOperations int = 1_000

// DefaultBaseSeed - Seed of the experiment as a whole
const DefaultBaseSeed int64 = 120

// UniversalSeedOffset - Added to a trial seed to get the seed of that trial's universal hash algorithm
const UniversalSeedOffset int64 = 17

// ProgressInterval - Number of trials between progress log lines
const ProgressInterval int = 100
