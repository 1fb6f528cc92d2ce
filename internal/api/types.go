// Package api defines the wire types shared by the daemon, the
// scheduler, and the qctl client.
package api

import (
	"time"

	"github.com/pkg/errors"
)

// ProblemKind identifies what a job asks the engine to solve.
type ProblemKind string

const (
	KindMaxCut    ProblemKind = "maxcut"
	KindChemistry ProblemKind = "chemistry"
)

// JobState tracks a job through the queue.
type JobState string

const (
	StateQueued    JobState = "queued"
	StateRunning   JobState = "running"
	StateCompleted JobState = "completed"
	StateFailed    JobState = "failed"
	StateCancelled JobState = "cancelled"
)

// Edge is one weighted edge of a Max-Cut instance.
type Edge struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// GraphSpec describes a Max-Cut instance, either as an explicit edge
// list or as a seeded random graph.
type GraphSpec struct {
	NumNodes int     `json:"num_nodes"`
	Edges    []Edge  `json:"edges,omitempty"`
	Random   bool    `json:"random,omitempty"`
	Density  float64 `json:"density,omitempty"`
	Seed     int64   `json:"seed,omitempty"`
}

// SolverSpec selects the solver and its hyperparameters. Zero values
// fall back to the engine defaults.
type SolverSpec struct {
	Name          string  `json:"name"` // "exact" or "vqe"
	Ansatz        string  `json:"ansatz,omitempty"`
	Depth         int     `json:"depth,omitempty"`
	Entanglement  string  `json:"entanglement,omitempty"`
	Optimizer     string  `json:"optimizer,omitempty"`
	MaxIterations int     `json:"max_iterations,omitempty"`
	Tolerance     float64 `json:"tolerance,omitempty"`
	Shots         int     `json:"shots,omitempty"`
	Seed          int64   `json:"seed,omitempty"`
}

// JobRequest is what clients submit.
type JobRequest struct {
	Kind     ProblemKind `json:"kind"`
	Graph    *GraphSpec  `json:"graph,omitempty"`
	Molecule string      `json:"molecule,omitempty"`
	Solver   SolverSpec  `json:"solver"`
	Priority int         `json:"priority,omitempty"`
	Backend  string      `json:"backend,omitempty"`
}

// Validate rejects requests the engine cannot act on.
func (r *JobRequest) Validate() error {
	switch r.Kind {
	case KindMaxCut:
		if r.Graph == nil {
			return errors.New("api: maxcut job needs a graph")
		}
		if r.Graph.NumNodes < 2 {
			return errors.New("api: graph needs at least 2 nodes")
		}
		if !r.Graph.Random && len(r.Graph.Edges) == 0 {
			return errors.New("api: graph needs edges or random=true")
		}
	case KindChemistry:
		if r.Molecule == "" {
			return errors.New("api: chemistry job needs a molecule preset")
		}
	default:
		return errors.Errorf("api: unknown problem kind %q", r.Kind)
	}
	switch r.Solver.Name {
	case "", "exact", "vqe":
	default:
		return errors.Errorf("api: unknown solver %q", r.Solver.Name)
	}
	return nil
}

// JobResult is the outcome of a completed job.
type JobResult struct {
	Solver      string    `json:"solver"`
	Energy      float64   `json:"energy"`
	Total       float64   `json:"total"`
	CutValue    float64   `json:"cut_value,omitempty"`
	Bitstring   []int     `json:"bitstring"`
	Parameters  []float64 `json:"parameters,omitempty"`
	Iterations  int       `json:"iterations"`
	Evaluations int       `json:"evaluations"`
	ElapsedMS   int64     `json:"elapsed_ms"`
	CacheHit    bool      `json:"cache_hit,omitempty"`
}

// Job is the queue record for one submitted request.
type Job struct {
	ID          string     `json:"id"`
	Request     JobRequest `json:"request"`
	State       JobState   `json:"state"`
	Result      *JobResult `json:"result,omitempty"`
	Error       string     `json:"error,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

// Terminal reports whether the job can no longer change state.
func (j *Job) Terminal() bool {
	switch j.State {
	case StateCompleted, StateFailed, StateCancelled:
		return true
	}
	return false
}

// MoleculeInfo describes one built-in molecular preset.
type MoleculeInfo struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	NumQubits       int     `json:"num_qubits"`
	ReferenceEnergy float64 `json:"reference_energy"`
	Supported       bool    `json:"supported"`
}
