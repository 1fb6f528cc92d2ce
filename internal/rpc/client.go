package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/perclft/IsingEngine/internal/api"
)

// SolverClient calls the solver service. It requests the JSON codec
// on every RPC so the server decodes without generated stubs.
type SolverClient struct {
	cc grpc.ClientConnInterface
}

func NewSolverClient(cc grpc.ClientConnInterface) *SolverClient {
	return &SolverClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in interface{}) (*Resp, error) {
	out := new(Resp)
	err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, grpc.CallContentSubtype(CodecName))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SolverClient) SubmitJob(ctx context.Context, req *api.JobRequest) (*JobHandle, error) {
	return invoke[JobHandle](ctx, c.cc, "SubmitJob", req)
}

func (c *SolverClient) GetJob(ctx context.Context, jobID string) (*JobStatus, error) {
	return invoke[JobStatus](ctx, c.cc, "GetJob", &JobRef{JobID: jobID})
}

func (c *SolverClient) CancelJob(ctx context.Context, jobID string) (*CancelResponse, error) {
	return invoke[CancelResponse](ctx, c.cc, "CancelJob", &JobRef{JobID: jobID})
}

func (c *SolverClient) ListJobs(ctx context.Context, req *ListJobsRequest) (*JobList, error) {
	return invoke[JobList](ctx, c.cc, "ListJobs", req)
}

func (c *SolverClient) ListMolecules(ctx context.Context) (*MoleculeList, error) {
	return invoke[MoleculeList](ctx, c.cc, "ListMolecules", &Empty{})
}
