// Command qctl is the client CLI for the solver daemon.
//
//	qctl submit -kind maxcut -edges graph.txt -solver vqe
//	qctl submit -kind chemistry -molecule H2_equilibrium
//	qctl status -job <id>
//	qctl cancel -job <id>
//	qctl list [-state completed]
//	qctl molecules
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/perclft/IsingEngine/internal/api"
	"github.com/perclft/IsingEngine/internal/graph"
	"github.com/perclft/IsingEngine/internal/rpc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "submit":
		runSubmit(args)
	case "status":
		runStatus(args)
	case "cancel":
		runCancel(args)
	case "list":
		runList(args)
	case "molecules":
		runMolecules(args)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: qctl <submit|status|cancel|list|molecules> [flags]")
	os.Exit(1)
}

func dial(addr string) (*rpc.SolverClient, *grpc.ClientConn) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Connection failed: %v", err)
	}
	return rpc.NewSolverClient(conn), conn
}

func runSubmit(args []string) {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	server := fs.String("server", "localhost:50051", "Daemon address")
	kind := fs.String("kind", "maxcut", "Problem kind: maxcut or chemistry")
	edgesFile := fs.String("edges", "", "Path to edge list file (maxcut)")
	nodes := fs.Int("nodes", 0, "Node count for a random graph (maxcut)")
	density := fs.Float64("density", 0.5, "Edge probability for a random graph")
	seed := fs.Int64("seed", 1, "Random graph seed")
	molecule := fs.String("molecule", "", "Molecule preset ID (chemistry)")
	solverName := fs.String("solver", "exact", "Solver: exact or vqe")
	depth := fs.Int("depth", 0, "Ansatz depth (vqe)")
	optimizer := fs.String("optimizer", "", "Optimizer: nelder-mead or spsa (vqe)")
	shots := fs.Int("shots", 0, "Sampling shots (vqe)")
	priority := fs.Int("priority", 1, "Job priority, higher runs first")
	wait := fs.Bool("wait", false, "Poll until the job finishes")
	fs.Parse(args)

	req := &api.JobRequest{
		Kind:     api.ProblemKind(*kind),
		Molecule: *molecule,
		Priority: *priority,
		Solver: api.SolverSpec{
			Name:      *solverName,
			Depth:     *depth,
			Optimizer: *optimizer,
			Shots:     *shots,
		},
	}
	if req.Kind == api.KindMaxCut {
		req.Graph = buildGraphSpec(*edgesFile, *nodes, *density, *seed)
	}

	client, conn := dial(*server)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	handle, err := client.SubmitJob(ctx, req)
	if err != nil {
		log.Fatalf("Submit failed: %v", err)
	}
	fmt.Printf("⚡ Job submitted: %s (position %d)\n", handle.JobID, handle.Position)

	if *wait {
		waitForJob(client, handle.JobID)
	}
}

func buildGraphSpec(edgesFile string, nodes int, density float64, seed int64) *api.GraphSpec {
	if edgesFile == "" {
		return &api.GraphSpec{NumNodes: nodes, Random: true, Density: density, Seed: seed}
	}
	f, err := os.Open(edgesFile)
	if err != nil {
		log.Fatalf("Failed to read edges: %v", err)
	}
	defer f.Close()
	g, err := graph.ParseEdgeList(f)
	if err != nil {
		log.Fatalf("Invalid edge list: %v", err)
	}
	spec := &api.GraphSpec{NumNodes: g.N()}
	for _, e := range g.Edges() {
		spec.Edges = append(spec.Edges, api.Edge{From: e.I, To: e.J, Weight: e.Weight})
	}
	return spec
}

func waitForJob(client *rpc.SolverClient, jobID string) {
	for {
		time.Sleep(time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		st, err := client.GetJob(ctx, jobID)
		cancel()
		if err != nil {
			log.Fatalf("Status failed: %v", err)
		}
		if st.Job.Terminal() {
			printJob(st)
			return
		}
		fmt.Printf("   state=%s position=%d\n", st.Job.State, st.Position)
	}
}

func runStatus(args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	server := fs.String("server", "localhost:50051", "Daemon address")
	jobID := fs.String("job", "", "Job ID")
	fs.Parse(args)
	if *jobID == "" {
		log.Fatal("status: -job is required")
	}

	client, conn := dial(*server)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := client.GetJob(ctx, *jobID)
	if err != nil {
		log.Fatalf("Status failed: %v", err)
	}
	printJob(st)
}

func printJob(st *rpc.JobStatus) {
	job := st.Job
	fmt.Printf("Job %s  state=%s  kind=%s\n", job.ID, job.State, job.Request.Kind)
	if st.Position > 0 {
		fmt.Printf("   queue position: %d\n", st.Position)
	}
	if job.Error != "" {
		fmt.Printf("💥 %s\n", job.Error)
	}
	if job.Result == nil {
		return
	}
	r := job.Result
	fmt.Printf("✅ solver=%s energy=%.6f total=%.6f (%d ms)\n", r.Solver, r.Energy, r.Total, r.ElapsedMS)
	if job.Request.Kind == api.KindMaxCut {
		fmt.Printf("   cut value: %.4f\n", r.CutValue)
	}
	fmt.Printf("   bitstring: %v\n", r.Bitstring)
	if r.CacheHit {
		fmt.Println("   (served from cache)")
	}
}

func runCancel(args []string) {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	server := fs.String("server", "localhost:50051", "Daemon address")
	jobID := fs.String("job", "", "Job ID")
	fs.Parse(args)
	if *jobID == "" {
		log.Fatal("cancel: -job is required")
	}

	client, conn := dial(*server)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := client.CancelJob(ctx, *jobID)
	if err != nil {
		log.Fatalf("Cancel failed: %v", err)
	}
	if resp.Cancelled {
		fmt.Printf("🗑️ %s\n", resp.Message)
	} else {
		fmt.Printf("❌ %s\n", resp.Message)
	}
}

func runList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	server := fs.String("server", "localhost:50051", "Daemon address")
	state := fs.String("state", "", "Filter by state")
	limit := fs.Int("limit", 20, "Page size")
	offset := fs.Int("offset", 0, "Page offset")
	asJSON := fs.Bool("json", false, "Print raw JSON")
	fs.Parse(args)

	client, conn := dial(*server)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	list, err := client.ListJobs(ctx, &rpc.ListJobsRequest{
		State:  api.JobState(*state),
		Offset: *offset,
		Limit:  *limit,
	})
	if err != nil {
		log.Fatalf("List failed: %v", err)
	}
	if *asJSON {
		out, _ := json.MarshalIndent(list, "", "  ")
		fmt.Println(string(out))
		return
	}
	fmt.Printf("%d job(s), showing %d:\n", list.Total, len(list.Jobs))
	for _, job := range list.Jobs {
		fmt.Printf("  %s  %-10s %-10s %s\n",
			job.ID, job.State, job.Request.Kind, job.SubmittedAt.Format(time.RFC3339))
	}
}

func runMolecules(args []string) {
	fs := flag.NewFlagSet("molecules", flag.ExitOnError)
	server := fs.String("server", "localhost:50051", "Daemon address")
	fs.Parse(args)

	client, conn := dial(*server)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	list, err := client.ListMolecules(ctx)
	if err != nil {
		log.Fatalf("Molecules failed: %v", err)
	}
	for _, m := range list.Molecules {
		mark := " "
		if m.Supported {
			mark = "✅"
		}
		fmt.Printf("%s %-16s %-32s E_ref=%.6f Ha\n", mark, m.ID, m.Name, m.ReferenceEnergy)
	}
}
