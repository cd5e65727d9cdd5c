package workload

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"math/rand"
)

// KeyMode - Selects which half of a drawn employee id / salary pair is used as the key
type KeyMode string

const (
	// EmployeeID - Key is the employee id, value is the salary
	EmployeeID KeyMode = "employee_id"
	// Salary - Key is the salary, value is the employee id. Salaries repeat a lot, which makes duplicate keys common.
	Salary KeyMode = "salary"
)

// ParseKeyMode - Returns the KeyMode named by s
func ParseKeyMode(s string) (keyMode KeyMode, err error) {
	switch KeyMode(s) {
	case EmployeeID, Salary:
		keyMode = KeyMode(s)
	default:
		err = fmt.Errorf("unknown key mode %q, expected %q or %q", s, EmployeeID, Salary)
	}

	return
}

// Action - One kind of hash map operation
type Action int

const (
	Search Action = iota
	Insert
	Delete
)

// String - Returns the name of the action
func (A Action) String() string {
	switch A {
	case Search:
		return "search"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("action(%d)", int(A))
	}
}

// weightedAction - An action and its share of the operation mix, kept in a slice so the cumulative walk is ordered
type weightedAction struct {
	action Action
	weight float64
}

var operationMix = []weightedAction{
	{action: Search, weight: conf.SearchWeight},
	{action: Insert, weight: conf.InsertWeight},
	{action: Delete, weight: conf.DeleteWeight},
}

// Generator - Draws synthetic employee id / salary pairs and operations from its own seeded source.
// A Generator is not safe for concurrent use, give each trial its own.
type Generator struct {
	r        *rand.Rand
	universe int64
}

// NewGenerator - Returns a pointer to a new Generator
//   - seed makes the sequence of draws reproducible
//   - universe is the max employee id
func NewGenerator(seed, universe int64) *Generator {
	return &Generator{
		r:        rand.New(rand.NewSource(seed)),
		universe: universe,
	}
}

// DrawEmployeeID - Returns an employee id uniform in [1, universe]
func (G *Generator) DrawEmployeeID() int64 {
	return 1 + G.r.Int63n(G.universe)
}

// DrawSalary - Returns a salary uniform over the multiples of conf.SalaryStep in [conf.SalaryMin, conf.SalaryMax]
func (G *Generator) DrawSalary() int64 {
	minMult := conf.SalaryMin / conf.SalaryStep
	maxMult := conf.SalaryMax / conf.SalaryStep

	return (minMult + G.r.Int63n(maxMult-minMult+1)) * conf.SalaryStep
}

// DrawPair - Draws an employee id and a salary and orders them as key and value according to keyMode
func (G *Generator) DrawPair(keyMode KeyMode) (key, value int64) {
	employeeID := G.DrawEmployeeID()
	salary := G.DrawSalary()

	if keyMode == Salary {
		return salary, employeeID
	}
	return employeeID, salary
}

// DrawKey - Draws a fresh key of the kind keyMode uses, it may or may not be present in any table
func (G *Generator) DrawKey(keyMode KeyMode) int64 {
	if keyMode == Salary {
		return G.DrawSalary()
	}
	return G.DrawEmployeeID()
}

// ChooseAction - Draws the next operation by walking the cumulative operation mix
func (G *Generator) ChooseAction() Action {
	r := G.r.Float64()

	var cdf float64
	for _, wa := range operationMix {
		cdf += wa.weight
		if r < cdf {
			return wa.action
		}
	}

	return Search
}

// Float64 - Returns a float uniform in [0, 1)
func (G *Generator) Float64() float64 {
	return G.r.Float64()
}

// Intn - Returns an int uniform in [0, n)
func (G *Generator) Intn(n int) int {
	return G.r.Intn(n)
}
