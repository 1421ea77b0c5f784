package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/midichord/analysis"
	"github.com/jsphweid/midichord/bucket"
	"github.com/jsphweid/midichord/constants"
	"github.com/jsphweid/midichord/logging"
	"github.com/jsphweid/midichord/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves the analyser over HTTP",
		Long: `Serves POST /analyze, which takes a raw MIDI file as the request body and
answers with its duration and chords as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := &http.Server{
				Addr:              addr,
				Handler:           NewHandler(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			logging.Log.Info().Str("addr", addr).Msg("listening")
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", constants.GetAddr(), "listen address")
	return cmd
}

func NewHandler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods(http.MethodPost)
	router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Log.Error().Err(err).Msg("could not write response")
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "ok"})
}

// analyzeOptions reads keying, tolerance and min_notes from the query string.
func analyzeOptions(r *http.Request) (analysis.Options, error) {
	q := r.URL.Query()
	opts := analysis.DefaultOptions()

	var tolerance float64
	if s := q.Get("tolerance"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return opts, err
		}
		tolerance = v
	}
	keying, err := bucket.ParseKeying(q.Get("keying"), tolerance)
	if err != nil {
		return opts, err
	}
	opts.Keying = keying

	if s := q.Get("min_notes"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return opts, err
		}
		opts.MinNotes = n
	}
	return opts, nil
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	opts, err := analyzeOptions(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	body := http.MaxBytesReader(w, r.Body, constants.MaxUploadSize)
	a, err := analysis.AnalyzeReader(body, r.URL.Query().Get("name"), opts)
	if err != nil {
		logging.Log.Debug().Err(err).Msg("rejected upload")
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, a)
}
