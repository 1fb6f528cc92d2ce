package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMaxCutRequest() *JobRequest {
	return &JobRequest{
		Kind: KindMaxCut,
		Graph: &GraphSpec{
			NumNodes: 3,
			Edges:    []Edge{{From: 0, To: 1, Weight: 1}},
		},
		Solver: SolverSpec{Name: "exact"},
	}
}

func TestValidateMaxCut(t *testing.T) {
	assert.NoError(t, validMaxCutRequest().Validate())

	r := validMaxCutRequest()
	r.Graph = nil
	assert.Error(t, r.Validate())

	r = validMaxCutRequest()
	r.Graph.NumNodes = 1
	assert.Error(t, r.Validate())

	r = validMaxCutRequest()
	r.Graph.Edges = nil
	assert.Error(t, r.Validate())

	r = validMaxCutRequest()
	r.Graph.Edges = nil
	r.Graph.Random = true
	assert.NoError(t, r.Validate())
}

func TestValidateChemistry(t *testing.T) {
	r := &JobRequest{Kind: KindChemistry, Molecule: "H2_equilibrium"}
	assert.NoError(t, r.Validate())

	r.Molecule = ""
	assert.Error(t, r.Validate())
}

func TestValidateKindAndSolver(t *testing.T) {
	r := &JobRequest{Kind: "folding"}
	assert.Error(t, r.Validate())

	r = validMaxCutRequest()
	r.Solver.Name = "quantum-annealer"
	assert.Error(t, r.Validate())

	r = validMaxCutRequest()
	r.Solver.Name = ""
	assert.NoError(t, r.Validate())
}

func TestJobTerminal(t *testing.T) {
	j := &Job{State: StateQueued}
	assert.False(t, j.Terminal())
	j.State = StateRunning
	assert.False(t, j.Terminal())
	for _, s := range []JobState{StateCompleted, StateFailed, StateCancelled} {
		j.State = s
		assert.True(t, j.Terminal(), string(s))
	}
}

func TestJobJSONRoundTrip(t *testing.T) {
	started := time.Now().Round(time.Second)
	job := &Job{
		ID:          "abc",
		Request:     *validMaxCutRequest(),
		State:       StateCompleted,
		SubmittedAt: started,
		StartedAt:   &started,
		Result: &JobResult{
			Solver:    "exact",
			Energy:    -0.5,
			Total:     -1,
			CutValue:  1,
			Bitstring: []int{0, 1},
		},
	}

	data, err := json.Marshal(job)
	require.NoError(t, err)

	var back Job
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, job.ID, back.ID)
	assert.Equal(t, job.State, back.State)
	assert.Equal(t, job.Result.Bitstring, back.Result.Bitstring)
	assert.True(t, job.SubmittedAt.Equal(back.SubmittedAt))
	assert.Nil(t, back.FinishedAt)
}
