// Command maxcut solves a Max-Cut instance locally, comparing exact
// diagonalization against the variational solver on the same Ising
// Hamiltonian.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/perclft/IsingEngine/internal/backend"
	"github.com/perclft/IsingEngine/internal/graph"
	"github.com/perclft/IsingEngine/internal/ising"
	"github.com/perclft/IsingEngine/internal/sim"
	"github.com/perclft/IsingEngine/internal/solver"
)

func main() {
	edgesFile := flag.String("edges", "", "Path to edge list file (\"i j w\" per line)")
	nodes := flag.Int("nodes", 5, "Node count for a random graph")
	density := flag.Float64("density", 0.5, "Edge probability for a random graph")
	seed := flag.Int64("seed", 42, "Random graph and optimizer seed")
	depth := flag.Int("depth", 2, "Ansatz depth")
	optimizer := flag.String("optimizer", "nelder-mead", "Optimizer: nelder-mead or spsa")
	maxIter := flag.Int("max-iter", 300, "Optimizer iteration budget")
	shots := flag.Int("shots", 1024, "Sampling shots for the reported bitstring")
	dumpQASM := flag.String("dump-qasm", "", "Write the optimized ansatz circuit as OpenQASM to this file")
	flag.Parse()

	g := loadGraph(*edgesFile, *nodes, *density, *seed)
	fmt.Printf("⚡ Max-Cut on %d nodes, %d edges\n", g.N(), len(g.Edges()))

	h, offset := ising.Hamiltonian(g)
	problem := solver.Problem{Hamiltonian: h, Offset: offset}
	ctx := context.Background()

	// Classical reference by enumeration.
	bestCut, bestSide := g.MaxCut()
	fmt.Printf("\n--- 🧮 Brute force ---\n")
	fmt.Printf("   max cut: %.4f  partition: %v\n", bestCut, bestSide)

	exact := &solver.Exact{}
	exactRes, err := exact.Solve(ctx, problem)
	if err != nil {
		log.Fatalf("Exact solve failed: %v", err)
	}
	printResult(g, "Exact diagonalization", exactRes)

	opts := solver.DefaultVQEOptions()
	opts.Depth = *depth
	opts.Optimizer = solver.OptimizerKind(*optimizer)
	opts.MaxIterations = *maxIter
	opts.Shots = *shots
	opts.Seed = *seed

	sv := backend.NewSimulator(g.N(), *seed)
	vqe := solver.NewVQE(opts, sv)
	vqeRes, err := vqe.Solve(ctx, problem)
	if err != nil {
		log.Fatalf("VQE solve failed: %v", err)
	}
	printResult(g, "VQE", vqeRes)

	gap := vqeRes.Energy - exactRes.Energy
	fmt.Printf("\n   energy gap (vqe - exact): %.6f\n", gap)

	if *dumpQASM != "" {
		writeQASM(*dumpQASM, g.N(), opts, vqeRes.Parameters)
	}
}

func loadGraph(edgesFile string, nodes int, density float64, seed int64) *graph.Weighted {
	if edgesFile == "" {
		g, err := graph.Random(nodes, density, 0.5, 2.0, seed)
		if err != nil {
			log.Fatalf("Failed to generate graph: %v", err)
		}
		return g
	}
	f, err := os.Open(edgesFile)
	if err != nil {
		log.Fatalf("Failed to open edges: %v", err)
	}
	defer f.Close()
	g, err := graph.ParseEdgeList(f)
	if err != nil {
		log.Fatalf("Invalid edge list: %v", err)
	}
	return g
}

func printResult(g *graph.Weighted, name string, res *solver.Result) {
	fmt.Printf("\n--- 🔬 %s ---\n", name)
	fmt.Printf("   energy: %.6f  total: %.6f\n", res.Energy, res.Total)
	cut, err := g.CutValue(res.Bitstring)
	if err == nil {
		fmt.Printf("   cut value: %.4f  partition: %v\n", cut, res.Bitstring)
	}
	if res.Iterations > 0 {
		fmt.Printf("   iterations: %d  evaluations: %d  elapsed: %s\n",
			res.Iterations, res.Evaluations, res.Elapsed)
	}
}

func writeQASM(path string, n int, opts solver.VQEOptions, params []float64) {
	ansatz, err := sim.NewAnsatz(opts.Ansatz, n, opts.Depth, opts.Entanglement)
	if err != nil {
		log.Fatalf("QASM export failed: %v", err)
	}
	circuit, err := ansatz.Build(params)
	if err != nil {
		log.Fatalf("QASM export failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(sim.ToQASM(circuit, true)), 0o644); err != nil {
		log.Fatalf("QASM export failed: %v", err)
	}
	fmt.Printf("\n💾 Wrote OpenQASM circuit to %s\n", path)
}
