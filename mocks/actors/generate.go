package actors_mocks

//go:generate mockgen -destination=persistence_provider.go -package=actors_mocks github.com/zikhan/grains/actors PersistenceProvider
//go:generate mockgen -destination=sink.go -package=actors_mocks github.com/zikhan/grains/actors Sink
