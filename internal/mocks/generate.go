package mocks

//go:generate mockery --name CaseStore --srcpkg github.com/bondwatch-lab/bondwatch/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
