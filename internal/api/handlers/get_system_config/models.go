package get_system_config

// ConfigResponse HTTP response model
type ConfigResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
