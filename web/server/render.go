package server

import (
	"bytes"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/polds/imgbase64"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// RenderResponse is the JSON form of a render
type RenderResponse struct {
	Scene       string           `json:"scene"`
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	ImageData   string           `json:"imageData"` // PNG data URI
	HitPixels   int              `json:"hitPixels"`
	TotalPixels int              `json:"totalPixels"`
	ElapsedMs   int64            `json:"elapsedMs"`
	Console     []ConsoleMessage `json:"console"`
}

// handleRender renders a scene and returns it as a PNG, or as JSON with a
// data URI when format=json
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	width, height := sceneObj.GetSize()
	consoleChan := make(chan ConsoleMessage, 64)
	logger := NewWebLogger(req.Scene, consoleChan)

	raytracer := renderer.NewRaytracer(sceneObj, logger)
	raytracer.SetProgressInterval(max(height/4, 1))

	startTime := time.Now()
	img, stats, err := raytracer.Render(r.Context())
	if err != nil {
		log.Printf("Render of %s failed: %v", req.Scene, err)
		writeError(w, http.StatusInternalServerError, "Render error: "+err.Error())
		return
	}
	logger.Printf("Rendered %s in %v\n", req.Scene, time.Since(startTime))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode image: "+err.Error())
		return
	}

	if r.URL.Query().Get("format") != "json" {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			log.Printf("Failed to write image: %v", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		Scene:       req.Scene,
		Width:       width,
		Height:      height,
		ImageData:   imgbase64.FromBuffer(buf),
		HitPixels:   stats.HitPixels,
		TotalPixels: stats.TotalPixels,
		ElapsedMs:   time.Since(startTime).Milliseconds(),
		Console:     drainConsole(consoleChan),
	})
}

// drainConsole collects every buffered console message without blocking
func drainConsole(consoleChan chan ConsoleMessage) []ConsoleMessage {
	messages := make([]ConsoleMessage, 0, len(consoleChan))
	for {
		select {
		case msg := <-consoleChan:
			messages = append(messages, msg)
		default:
			return messages
		}
	}
}
