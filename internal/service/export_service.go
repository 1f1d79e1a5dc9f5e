package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/tunewave/server/internal/repository"
)

// ExportService 后台导出服务，生成XLSX报表
type ExportService struct {
	userRepo   repository.UserRepository
	artistRepo repository.ArtistRepository
	songRepo   repository.SongRepository
	ratingRepo repository.RatingRepository
}

// NewExportService 创建导出服务
func NewExportService(
	userRepo repository.UserRepository,
	artistRepo repository.ArtistRepository,
	songRepo repository.SongRepository,
	ratingRepo repository.RatingRepository,
) *ExportService {
	return &ExportService{
		userRepo:   userRepo,
		artistRepo: artistRepo,
		songRepo:   songRepo,
		ratingRepo: ratingRepo,
	}
}

// ExportCatalog 导出用户、歌手、歌曲与评分排行到单个工作簿
func (s *ExportService) ExportCatalog(ctx context.Context) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeUsers(ctx, f); err != nil {
		return nil, err
	}
	if err := s.writeArtists(ctx, f); err != nil {
		return nil, err
	}
	if err := s.writeSongs(ctx, f); err != nil {
		return nil, err
	}
	if err := s.writeTopRated(ctx, f); err != nil {
		return nil, err
	}

	// 删除excelize默认创建的Sheet1
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExportService) writeUsers(ctx context.Context, f *excelize.File) error {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return err
	}

	const sheet = "Users"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &[]any{"ID", "Username", "Email", "Role", "Status", "CreatedAt"}); err != nil {
		return err
	}
	for i, u := range users {
		status := ""
		if u.Status != nil {
			status = *u.Status
		}
		cell := "A" + strconv.Itoa(i+2)
		row := []any{u.ID, u.Username, u.Email, string(u.Role), status, u.CreatedAt.Format("2006-01-02")}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeArtists(ctx context.Context, f *excelize.File) error {
	artists, err := s.artistRepo.List(ctx)
	if err != nil {
		return err
	}

	const sheet = "Artists"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &[]any{"ID", "Name", "Bio"}); err != nil {
		return err
	}
	for i, a := range artists {
		cell := "A" + strconv.Itoa(i+2)
		row := []any{a.ID, a.Name, a.Bio}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeSongs(ctx context.Context, f *excelize.File) error {
	songs, err := s.songRepo.List(ctx)
	if err != nil {
		return err
	}

	const sheet = "Songs"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &[]any{"ID", "Title", "ArtistID", "AlbumID", "Genre", "Duration", "ReleaseDate"}); err != nil {
		return err
	}
	for i, song := range songs {
		albumID := ""
		if song.AlbumID != nil {
			albumID = strconv.FormatInt(*song.AlbumID, 10)
		}
		cell := "A" + strconv.Itoa(i+2)
		row := []any{song.ID, song.Title, song.ArtistID, albumID, string(song.Genre), song.Duration, song.ReleaseDate.Format("2006-01-02")}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeTopRated(ctx context.Context, f *excelize.File) error {
	stats, err := s.ratingRepo.TopRated(ctx)
	if err != nil {
		return err
	}

	const sheet = "TopRated"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &[]any{"SongID", "Title", "AvgRating", "RatingCount"}); err != nil {
		return err
	}
	for i, st := range stats {
		cell := "A" + strconv.Itoa(i+2)
		row := []any{st.SongID, st.Title, fmt.Sprintf("%.2f", st.AvgRating), st.RatingCount}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
