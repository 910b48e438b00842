package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Color        string                 `json:"color"` // #rrggbb
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult is the outcome of casting a single pixel's ray
type InspectResult struct {
	Hit       bool
	HitRecord geometry.HitRecord
	Shape     geometry.Shape // The closest shape that was hit
	Ray       core.Ray
}

// inspectPixel casts the ray through pixel (x, y) and reports the closest shape hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	width, height := sceneObj.GetSize()
	ray := sceneObj.GetCamera().PixelRay(pixelX, pixelY, width, height)

	result := InspectResult{Ray: ray}
	closestSoFar := math.Inf(1)
	for _, shape := range sceneObj.Shapes {
		var rec geometry.HitRecord
		if shape.Hit(ray, math.Nextafter(0, 1), closestSoFar, &rec) {
			closestSoFar = rec.T
			result.Hit = true
			result.HitRecord = rec
			result.Shape = shape
		}
	}
	return result
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = [3]float64(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties
	case *geometry.Plane:
		properties["point"] = [3]float64(geom.Point)
		properties["normal"] = [3]float64(geom.Normal)
		return "plane", properties
	default:
		return "unknown", properties
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	width, height := sceneObj.GetSize()
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	pixelColor := renderer.ResolveColor(result.Ray, sceneObj.GetWorld(), sceneObj.GetBackground(), sceneObj.GetShading())
	colorHex := fmt.Sprintf("#%02x%02x%02x", pixelColor.R, pixelColor.G, pixelColor.B)

	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, Color: colorHex})
		return
	}

	geometryType, geometryProps := extractGeometryInfo(result.Shape)
	rec := result.HitRecord

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        [3]float64(rec.Point),
		Normal:       [3]float64(rec.Normal),
		Distance:     rec.T,
		FrontFace:    rec.FrontFace,
		Color:        colorHex,
		Properties:   map[string]interface{}{"geometry": geometryProps},
	})
}
