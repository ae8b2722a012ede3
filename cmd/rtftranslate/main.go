// Command rtftranslate decomposes a batch of RTF files, sends their
// translatable text through a backend, and recomposes the results into a
// destination directory, polling progress and the run log to stdout until
// both phases complete.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/cdvelop/rtftranslate/translate"
	"github.com/cdvelop/rtftranslate/worker"
	"github.com/tinywasm/fmt"
)

func main() {
	workspace := flag.String("workspace", "", "directory for intermediate templates and the run log")
	destinationDir := flag.String("destination-dir", "", "directory to write translated output into")
	inputGlob := flag.String("inputs", "", "glob pattern matching source RTF files")
	backendURL := flag.String("backend-url", "", "OpenAI-compatible chat-completions endpoint")
	backendModel := flag.String("backend-model", "", "chat-completions model name")
	flag.Parse()

	*workspace = withDefault(*workspace, "WORKSPACE_DIR", "workspace")
	*destinationDir = withDefault(*destinationDir, "DESTINATION_DIR", "result")
	*inputGlob = withDefault(*inputGlob, "INPUT_GLOB", "*.rtf")
	*backendURL = withDefault(*backendURL, "BACKEND_URL", "https://dashscope.aliyuncs.com/compatible-mode/v1/chat/completions")
	*backendModel = withDefault(*backendModel, "BACKEND_MODEL", "qwen-turbo")
	apiKey := os.Getenv("TRANSLATE_API_KEY")
	if apiKey == "" {
		log.Fatal("TRANSLATE_API_KEY must be set")
	}

	outputs, err := filepath.Glob(*inputGlob)
	if err != nil {
		log.Fatalf("invalid input glob %q: %v", *inputGlob, err)
	}
	if len(outputs) == 0 {
		log.Fatalf("no files matched %q", *inputGlob)
	}

	backend := translate.NewHTTPBackend(*backendURL, apiKey, *backendModel)
	translator := translate.New(backend, func(err error) {
		log.Printf("translate: %v", err)
	})

	w, err := worker.New(worker.Config{
		Workspace:      *workspace,
		DestinationDir: *destinationDir,
		Outputs:        outputs,
	}, translator)
	if err != nil {
		log.Fatalf("starting worker: %v", err)
	}

	w.ExtractTranslate()
	// The run log stays active through both phases; only Progress reaching
	// 1.0 signals this phase is done.
	pollUntilDone(w, func(active bool, progress float64) bool { return progress == 1.0 })

	w.ClearProgress()
	w.Stuff(nil)
	// Stuff stops the log once every template has been recomposed, so wait
	// for both signals here.
	pollUntilDone(w, func(active bool, progress float64) bool { return !active && progress == 1.0 })
}

func pollUntilDone(w *worker.Worker, done func(active bool, progress float64) bool) {
	for {
		text, active, err := w.ReadLog()
		if err != nil {
			log.Fatalf("reading log: %v", err)
		}
		if text != "" {
			fmt.Print(text)
		}
		if done(active, w.Progress()) {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func withDefault(flagValue, envVar, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return fallback
}
