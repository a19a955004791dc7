package update_system_config

// UpdateConfigRequest HTTP request model
type UpdateConfigRequest struct {
	Value string `json:"value"`
}

// ConfigResponse HTTP response model
type ConfigResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
