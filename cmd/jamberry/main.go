package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jamberry/jamberry/internal/crypto"
	"github.com/jamberry/jamberry/internal/pvm"
	"github.com/jamberry/jamberry/internal/store"
	"github.com/jamberry/jamberry/pkg/db/pebble"
	"github.com/jamberry/jamberry/pkg/log"
)

// main runs one program container to a terminal state.
// go run main.go -program service.pvm -input 0xcafe -gas 100000
func main() {
	programPath := flag.String("program", "", "path to a program container blob")
	codeHash := flag.String("code-hash", "", "run a cached program by its code hash instead of a file")
	inputHex := flag.String("input", "", "input bytes as hex, 0x prefix optional")
	gasLimit := flag.Uint64("gas", 100_000, "gas limit for the invocation")
	dynamicAlloc := flag.Bool("dynamic-alloc", false, "allow the program to grow its heap with sbrk")
	traceSteps := flag.Bool("trace", false, "log every executed instruction")
	logLevel := flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
	cacheDir := flag.String("cache", "", "directory of the program cache, empty disables caching")
	flag.Parse()

	level, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		stdlog.Fatalf("parse log level: %v", err)
	}
	if *traceSteps && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	log.Init(log.Options{LogLevel: level, Type: log.ConsoleLogger})

	if (*programPath == "") == (*codeHash == "") {
		stdlog.Fatal("exactly one of -program or -code-hash is required")
	}

	input, err := parseHex(*inputHex)
	if err != nil {
		stdlog.Fatalf("parse input: %v", err)
	}

	var programs *store.Programs
	if *cacheDir != "" {
		kv, err := pebble.NewPersistentKVStore(*cacheDir)
		if err != nil {
			stdlog.Fatalf("open program cache: %v", err)
		}
		programs = store.NewPrograms(kv)
		defer programs.Close()
	}

	blob, hash, err := loadProgram(programs, *programPath, *codeHash)
	if err != nil {
		stdlog.Fatalf("load program: %v", err)
	}
	log.VM.Info().Stringer("code_hash", hash).Int("blob_size", len(blob)).Msg("program loaded")

	instance, err := pvm.InitFromContainer(blob, input, pvm.Gas(*gasLimit), *dynamicAlloc)
	if err != nil {
		stdlog.Fatalf("initialize program: %v", err)
	}
	if *traceSteps {
		instance.SetTrace(pvm.NewTrace(log.VM, pvm.Gas(*gasLimit)))
	}

	result := instance.Run()
	printResult(result)

	if programs != nil {
		if err := recordRun(programs, hash, result); err != nil {
			log.Store.Warn().Err(err).Msg("record run outcome")
		}
	}

	if result.Status != pvm.StatusHalt {
		os.Exit(1)
	}
}

func loadProgram(programs *store.Programs, path, hashHex string) ([]byte, crypto.Hash, error) {
	if hashHex != "" {
		if programs == nil {
			return nil, crypto.Hash{}, fmt.Errorf("-code-hash requires -cache")
		}
		raw, err := parseHex(hashHex)
		if err != nil {
			return nil, crypto.Hash{}, fmt.Errorf("parse code hash: %w", err)
		}
		if len(raw) != crypto.HashSize {
			return nil, crypto.Hash{}, fmt.Errorf("code hash must be %d bytes", crypto.HashSize)
		}
		var hash crypto.Hash
		copy(hash[:], raw)
		blob, err := programs.GetProgram(hash)
		if err != nil {
			return nil, crypto.Hash{}, err
		}
		return blob, hash, nil
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, crypto.Hash{}, fmt.Errorf("read program file: %w", err)
	}
	if programs != nil {
		hash, err := programs.PutProgram(blob)
		if err != nil {
			return nil, crypto.Hash{}, err
		}
		return blob, hash, nil
	}
	return blob, crypto.HashData(blob), nil
}

func recordRun(programs *store.Programs, hash crypto.Hash, result pvm.Result) error {
	record := store.RunRecord{
		Status:    result.Status.String(),
		Reason:    result.Reason,
		GasUsed:   uint64(result.GasUsed),
		Registers: result.Registers[:],
		Output:    result.Output,
	}
	return programs.PutRunRecord(hash, record)
}

func printResult(result pvm.Result) {
	fmt.Printf("status: %s\n", result.Status)
	if result.Reason != "" {
		fmt.Printf("reason: %s\n", result.Reason)
	}
	if result.Status == pvm.StatusPageFault {
		fmt.Printf("fault address: 0x%x\n", result.FaultAddress)
	}
	fmt.Printf("gas used: %d\n", result.GasUsed)
	for i, reg := range result.Registers {
		fmt.Printf("r%-2d = 0x%016x\n", i, reg)
	}
	if result.Output != nil {
		fmt.Printf("output: 0x%s\n", hex.EncodeToString(result.Output))
	}
}

func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}
