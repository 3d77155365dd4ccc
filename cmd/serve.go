package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/melodex/chord"
	"github.com/jsphweid/melodex/compose"
	"github.com/jsphweid/melodex/instrument"
	"github.com/jsphweid/melodex/midi"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/scale"
)

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the composition API",
	Long:  `Serves the composition API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// HandleCompose builds the posted document and answers with the rendered
// midi bytes as a download.
func HandleCompose(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	c, err := compose.FromJSON(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := midi.WriteBytes(c)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := uuid.New().String() + ".mid"
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

// HandleDescribe builds the posted document and answers with a summary of
// what the midi file would contain, without rendering it.
func HandleDescribe(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	c, err := compose.FromJSON(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	meta := model.ComposeResponseMeta{Tempo: c.Tempo, Beats: c.Beats()}
	for _, t := range c.Tracks {
		meta.Tracks = append(meta.Tracks, model.TrackSummary{
			Name:     t.Name,
			Channel:  t.Channel,
			Program:  t.Program,
			NumNotes: len(t.Notes),
		})
	}
	writeJSON(w, meta)
}

func HandleScales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, scale.Names())
}

func HandleChords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, chord.Names())
}

func HandleInstruments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, instrument.Programs)
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]bool{"ok": true})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/api/compose", HandleCompose).Methods("POST")
	router.HandleFunc("/api/describe", HandleDescribe).Methods("POST")
	router.HandleFunc("/api/scales", HandleScales).Methods("GET")
	router.HandleFunc("/api/chords", HandleChords).Methods("GET")
	router.HandleFunc("/api/instruments", HandleInstruments).Methods("GET")
	router.HandleFunc("/health", HandleHealth).Methods("GET")

	handler := cors.Default().Handler(router)
	fmt.Printf("Listening on :%v\n", servePort)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", servePort), handler))
}
