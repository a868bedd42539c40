package routes

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
	"github.com/sconix/matterbridge-vallox/bridge"
	"github.com/sconix/matterbridge-vallox/device"
)

type stateResponse struct {
	Device        *device.BasicInfo `json:"device"`
	Status        *device.Status    `json:"status,omitempty"`
	AirQuality    string            `json:"air_quality,omitempty"`
	LastDelivered time.Time         `json:"last_delivered,omitempty"`
}

func State(b *bridge.Bridge) func(http.ResponseWriter, *http.Request, httprouter.Params) {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		resp := stateResponse{
			Device: b.Info(),
		}

		if status, updated, ok := b.LastStatus(); ok {
			resp.Status = status
			resp.AirQuality = status.AirQuality().String()
			resp.LastDelivered = updated
		}

		w.Header().Set("Content-Type", "application/json")

		if marshaled, err := json.Marshal(resp); err != nil {
			log.Error().Err(err).Msg("error marshaling state")
			w.WriteHeader(http.StatusInternalServerError)
		} else {
			w.Write(marshaled)
		}
	}
}
