package emby

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_emby.go github.com/curatord/curatord/pkg/emby IEmby
