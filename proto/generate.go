// Package llmv1 contains the gRPC contract for the external LLM service.
// The generated code (llm.pb.go, llm_grpc.pb.go) is produced by protoc.
package llmv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
