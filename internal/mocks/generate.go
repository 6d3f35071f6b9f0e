package mocks

//go:generate mockery --name ContestStore --srcpkg github.com/isa-rankings/rankings/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name RankingStore --srcpkg github.com/isa-rankings/rankings/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name AthleteRegistry --srcpkg github.com/isa-rankings/rankings/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name AthleteWriter --srcpkg github.com/isa-rankings/rankings/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name ChangeLog --srcpkg github.com/isa-rankings/rankings/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
