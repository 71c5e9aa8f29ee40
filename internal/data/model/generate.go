package model

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ./ent ./schema
