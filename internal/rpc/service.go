package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/perclft/IsingEngine/internal/api"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "isingengine.Solver"

// JobHandle acknowledges a submission.
type JobHandle struct {
	JobID       string `json:"job_id"`
	Position    int    `json:"position"`
	SubmittedAt int64  `json:"submitted_at"`
}

// JobRef identifies an existing job.
type JobRef struct {
	JobID string `json:"job_id"`
}

// JobStatus is a job record plus its live queue position.
type JobStatus struct {
	Job      *api.Job `json:"job"`
	Position int      `json:"position,omitempty"`
}

// CancelResponse reports the outcome of a cancel attempt.
type CancelResponse struct {
	Cancelled bool   `json:"cancelled"`
	Message   string `json:"message"`
}

// ListJobsRequest filters and paginates the job listing.
type ListJobsRequest struct {
	State  api.JobState `json:"state,omitempty"`
	Offset int          `json:"offset,omitempty"`
	Limit  int          `json:"limit,omitempty"`
}

// JobList is a page of job records.
type JobList struct {
	Jobs  []*api.Job `json:"jobs"`
	Total int        `json:"total"`
}

// Empty is the request type for parameterless methods.
type Empty struct{}

// MoleculeList enumerates the built-in molecular presets.
type MoleculeList struct {
	Molecules []*api.MoleculeInfo `json:"molecules"`
}

// SolverServer is the service contract.
type SolverServer interface {
	SubmitJob(ctx context.Context, req *api.JobRequest) (*JobHandle, error)
	GetJob(ctx context.Context, ref *JobRef) (*JobStatus, error)
	CancelJob(ctx context.Context, ref *JobRef) (*CancelResponse, error)
	ListJobs(ctx context.Context, req *ListJobsRequest) (*JobList, error)
	ListMolecules(ctx context.Context, _ *Empty) (*MoleculeList, error)
}

// RegisterSolverServer registers the service on a gRPC server.
func RegisterSolverServer(s *grpc.Server, srv SolverServer) {
	s.RegisterService(&solverServiceDesc, srv)
}

func unaryHandler[Req, Resp any](
	method string,
	invoke func(SolverServer, context.Context, *Req) (*Resp, error),
) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return invoke(srv.(SolverServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return invoke(srv.(SolverServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var solverServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SolverServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitJob",
			Handler: unaryHandler("SubmitJob", func(s SolverServer, ctx context.Context, req *api.JobRequest) (*JobHandle, error) {
				return s.SubmitJob(ctx, req)
			}),
		},
		{
			MethodName: "GetJob",
			Handler: unaryHandler("GetJob", func(s SolverServer, ctx context.Context, req *JobRef) (*JobStatus, error) {
				return s.GetJob(ctx, req)
			}),
		},
		{
			MethodName: "CancelJob",
			Handler: unaryHandler("CancelJob", func(s SolverServer, ctx context.Context, req *JobRef) (*CancelResponse, error) {
				return s.CancelJob(ctx, req)
			}),
		},
		{
			MethodName: "ListJobs",
			Handler: unaryHandler("ListJobs", func(s SolverServer, ctx context.Context, req *ListJobsRequest) (*JobList, error) {
				return s.ListJobs(ctx, req)
			}),
		},
		{
			MethodName: "ListMolecules",
			Handler: unaryHandler("ListMolecules", func(s SolverServer, ctx context.Context, req *Empty) (*MoleculeList, error) {
				return s.ListMolecules(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "isingengine/solver",
}
