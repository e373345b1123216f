package mocks

//go:generate mockgen -destination=./mock_bars.go -package=mocks github.com/rxtech-lab/argo-indicator/internal/solver Bars
//go:generate mockgen -destination=./mock_objective.go -package=mocks github.com/rxtech-lab/argo-indicator/internal/solver Objective
