package config

// DefaultVars are referenced from DefaultValues and any user file as {{Name}}
const DefaultVars = `
RPCHost = "0.0.0.0"
RPCPort = 5576
`

// DefaultValues is the default configuration
const DefaultValues = `
[Log]
  # Environment is the environment where the node is running
  Environment = "development" # "production" or "development"
  # Level is the log level
  Level = "info"
  # Outputs are the outputs where the logs will be written
  Outputs = ["stderr"]

[RPC]
  # Host defines the network adapter that will be used to serve the HTTP requests
  Host = "{{RPCHost}}"
  # Port defines the port to serve the endpoints via HTTP
  Port = {{RPCPort}}
  # ReadTimeout is the HTTP server read timeout
  # check net/http.server.ReadTimeout and net/http.server.ReadHeaderTimeout
  ReadTimeout = "2s"
  # WriteTimeout is the HTTP server write timeout
  # check net/http.server.WriteTimeout
  WriteTimeout = "2s"
  # MaxRequestsPerIPAndSecond defines how much requests a single IP can
  # send within a single second
  MaxRequestsPerIPAndSecond = 500
`
