package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	"github.com/perclft/IsingEngine/internal/api"
)

func TestCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, CodecName, codec.Name())
}

func TestCodecRoundTrip(t *testing.T) {
	codec := jsonCodec{}

	in := &api.JobRequest{
		Kind: api.KindMaxCut,
		Graph: &api.GraphSpec{
			NumNodes: 4,
			Edges:    []api.Edge{{From: 0, To: 3, Weight: 1.25}},
		},
		Solver: api.SolverSpec{Name: "vqe", Depth: 2, Shots: 512},
	}
	data, err := codec.Marshal(in)
	require.NoError(t, err)

	var out api.JobRequest
	require.NoError(t, codec.Unmarshal(data, &out))
	assert.Equal(t, *in.Graph, *out.Graph)
	assert.Equal(t, in.Solver, out.Solver)
}

func TestServiceDescMethods(t *testing.T) {
	assert.Equal(t, ServiceName, solverServiceDesc.ServiceName)

	names := make([]string, 0, len(solverServiceDesc.Methods))
	for _, m := range solverServiceDesc.Methods {
		names = append(names, m.MethodName)
	}
	assert.ElementsMatch(t,
		[]string{"SubmitJob", "GetJob", "CancelJob", "ListJobs", "ListMolecules"},
		names)
}
