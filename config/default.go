package config

// DefaultConfigYAML 内置默认配置，未提供外部配置文件时使用
var DefaultConfigYAML = []byte(`server:
  port: ":8080"
  mode: "debug"
  base_url: "http://localhost:8080"

database:
  host: "127.0.0.1"
  port: "3306"
  username: "root"
  password: ""
  dbname: "fintrack"
  charset: "utf8mb4"
`)
