package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	Threshold         int    `usage:"length above which arrays are allocated pre-sized"`
	MaxLength         int    `usage:"largest length accepted by the API, 0 means no limit"`
	ApiKey            string `usage:"API key required in X-Api-Key, empty disables authentication"`
	ApiSecret         string `usage:"API secret required in X-Api-Secret"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	Calibrate         bool   `usage:"calibrate the threshold on startup"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}
