package rpc

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/perclft/IsingEngine/internal/api"
	"github.com/perclft/IsingEngine/internal/chemistry"
	"github.com/perclft/IsingEngine/internal/scheduler"
)

// Server implements SolverServer on top of the scheduler.
type Server struct {
	sched *scheduler.Scheduler
}

func NewServer(sched *scheduler.Scheduler) *Server {
	return &Server{sched: sched}
}

func (s *Server) SubmitJob(ctx context.Context, req *api.JobRequest) (*JobHandle, error) {
	job, err := s.sched.Submit(ctx, req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &JobHandle{
		JobID:       job.ID,
		Position:    s.sched.QueuePosition(ctx, job.ID),
		SubmittedAt: job.SubmittedAt.Unix(),
	}, nil
}

func (s *Server) GetJob(ctx context.Context, ref *JobRef) (*JobStatus, error) {
	job, err := s.sched.Get(ctx, ref.JobID)
	if errors.Is(err, scheduler.ErrJobNotFound) {
		return nil, status.Errorf(codes.NotFound, "job not found: %s", ref.JobID)
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	st := &JobStatus{Job: job}
	if job.State == api.StateQueued {
		st.Position = s.sched.QueuePosition(ctx, job.ID)
	}
	return st, nil
}

func (s *Server) CancelJob(ctx context.Context, ref *JobRef) (*CancelResponse, error) {
	cancelled, err := s.sched.Cancel(ctx, ref.JobID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !cancelled {
		return &CancelResponse{Cancelled: false, Message: "job not queued or running"}, nil
	}
	return &CancelResponse{Cancelled: true, Message: "job cancelled"}, nil
}

func (s *Server) ListJobs(ctx context.Context, req *ListJobsRequest) (*JobList, error) {
	jobs, total, err := s.sched.List(ctx, req.State, req.Offset, req.Limit)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &JobList{Jobs: jobs, Total: total}, nil
}

func (s *Server) ListMolecules(ctx context.Context, _ *Empty) (*MoleculeList, error) {
	infos := lo.Map(chemistry.Presets(), func(p *chemistry.Preset, _ int) *api.MoleculeInfo {
		info := &api.MoleculeInfo{
			ID:              p.ID,
			Name:            p.Name,
			ReferenceEnergy: p.ReferenceEnergy,
		}
		if qh, err := chemistry.BuildHamiltonian(p.ID); err == nil {
			info.NumQubits = qh.NumQubits
			info.Supported = true
		}
		return info
	})
	return &MoleculeList{Molecules: infos}, nil
}
