package gaming

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/marvelhub/marvel-hub-api/infrastructure/repository"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidBestTime   = errors.New("tempo inválido, use o formato M:SS")
	ErrInvalidBestPoints = errors.New("pontuação inválida")
)

var bestTimePattern = regexp.MustCompile(`^(\d+):([0-5]\d)$`)

type GameService interface {
	GetStats(userID int) (*domain.GameStat, error)
	SaveOrUpdateStats(userID int, bestTime, bestPoints string) (*domain.GameStat, error)
	GetLeaderboard() (*domain.LeaderboardResponse, error)
	RecomputeLeaderboard() error
}

type Service struct {
	gameStatRepo repository.GameStatRepository
	userRepo     repository.UserRepository
}

func NewService(gameStatRepo repository.GameStatRepository, userRepo repository.UserRepository) GameService {
	return &Service{
		gameStatRepo: gameStatRepo,
		userRepo:     userRepo,
	}
}

func (s *Service) GetStats(userID int) (*domain.GameStat, error) {
	return s.gameStatRepo.GetStatsByUserID(userID)
}

// SaveOrUpdateStats grava o desempenho de uma partida mantendo sempre o melhor
// resultado por usuário. Tempo menor vence; pontuação maior vence.
func (s *Service) SaveOrUpdateStats(userID int, bestTime, bestPoints string) (*domain.GameStat, error) {
	timeSeconds, err := parseBestTime(bestTime)
	if err != nil {
		return nil, err
	}

	points, err := parseBestPoints(bestPoints)
	if err != nil {
		return nil, err
	}

	current, err := s.gameStatRepo.GetStatsByUserID(userID)
	if err != nil {
		return nil, err
	}

	stat := &domain.GameStat{
		UserID:     userID,
		BestTime:   bestTime,
		BestPoints: bestPoints,
	}

	if current != nil {
		currentSeconds, err := parseBestTime(current.BestTime)
		if err == nil && currentSeconds <= timeSeconds {
			stat.BestTime = current.BestTime
		}

		currentPoints, err := parseBestPoints(current.BestPoints)
		if err == nil && currentPoints >= points {
			stat.BestPoints = current.BestPoints
		}
	}

	if err := s.gameStatRepo.UpsertStats(stat); err != nil {
		return nil, err
	}

	return s.gameStatRepo.GetStatsByUserID(userID)
}

func (s *Service) GetLeaderboard() (*domain.LeaderboardResponse, error) {
	return s.gameStatRepo.GetLeaderboard()
}

// RecomputeLeaderboard reordena o placar a partir das estatísticas salvas.
// Pontuação maior primeiro; empate decidido pelo menor tempo.
func (s *Service) RecomputeLeaderboard() error {
	stats, err := s.gameStatRepo.ListStats()
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		logrus.Info("Nenhuma estatística de jogo encontrada, placar mantido")
		return nil
	}

	users, err := s.userRepo.ListUser()
	if err != nil {
		return err
	}

	namesByID := make(map[int]string, len(users))
	for _, user := range users {
		namesByID[user.ID] = strings.TrimSpace(user.Name + " " + user.Lastname)
	}

	type scored struct {
		stat    *domain.GameStat
		points  int
		seconds int
	}

	ranked := make([]scored, 0, len(stats))
	for _, stat := range stats {
		points, err := parseBestPoints(stat.BestPoints)
		if err != nil {
			logrus.Warnf("Pontuação inválida para o usuário %d, ignorado no placar: %v", stat.UserID, err)
			continue
		}

		seconds, err := parseBestTime(stat.BestTime)
		if err != nil {
			logrus.Warnf("Tempo inválido para o usuário %d, ignorado no placar: %v", stat.UserID, err)
			continue
		}

		ranked = append(ranked, scored{stat: stat, points: points, seconds: seconds})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].points != ranked[j].points {
			return ranked[i].points > ranked[j].points
		}
		return ranked[i].seconds < ranked[j].seconds
	})

	entries := make([]*domain.LeaderboardEntry, 0, len(ranked))
	for i, item := range ranked {
		position := i + 1

		previousPosition := 0
		existing, err := s.gameStatRepo.GetLeaderboardEntry(item.stat.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			previousPosition = existing.Position
		}

		positionChange := 0
		if previousPosition > 0 {
			positionChange = previousPosition - position
		}

		playerName := namesByID[item.stat.UserID]
		if playerName == "" {
			playerName = fmt.Sprintf("Agente %d", item.stat.UserID)
		}

		entries = append(entries, &domain.LeaderboardEntry{
			UserID:           item.stat.UserID,
			PlayerName:       playerName,
			BestTime:         item.stat.BestTime,
			BestPoints:       item.points,
			Position:         position,
			PositionChange:   positionChange,
			PreviousPosition: previousPosition,
		})
	}

	if err := s.gameStatRepo.SaveOrUpdateLeaderboard(entries); err != nil {
		return err
	}

	logrus.Infof("Placar recalculado com %d posições", len(entries))
	return nil
}

// parseBestTime converte "M:SS" para o total em segundos
func parseBestTime(value string) (int, error) {
	matches := bestTimePattern.FindStringSubmatch(strings.TrimSpace(value))
	if matches == nil {
		return 0, ErrInvalidBestTime
	}

	minutes, _ := strconv.Atoi(matches[1])
	seconds, _ := strconv.Atoi(matches[2])

	return minutes*60 + seconds, nil
}

func parseBestPoints(value string) (int, error) {
	points, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || points < 0 {
		return 0, ErrInvalidBestPoints
	}

	return points, nil
}
