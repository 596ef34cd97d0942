package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/player --output domain/player --outpkg playermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name TableWriter --dir ../domain/player --output domain/player --outpkg playermock --filename table_writer_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SquadSource --dir ../usecase --output usecase --outpkg usecasemock --filename squad_source_mock.go
