package api

import "internsift/app/database"

type Handler struct {
	store   database.JobStore
	version string
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type statsResponse struct {
	ValidRows     int `json:"valid_rows"`
	DiscardedRows int `json:"discarded_rows"`
}
