package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"cinemax/src/config"
	files "cinemax/src/modules/files/services"
	movies "cinemax/src/modules/movies/models"
	"cinemax/src/utils"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// SetupBackgroundJobs starts the periodic poster mirror.
func SetupBackgroundJobs() {
	c := cron.New()

	c.AddFunc("@every 12h", func() {
		go MirrorExternalPosters()
	})

	c.Start()
	log.Println("[Cron] Background jobs initialized")
}

// MirrorExternalPosters copies posters that still point at external URLs into
// the object store and rewrites the rows to the local path. Failures are
// logged and skipped; the next run retries them.
func MirrorExternalPosters() {
	var list []movies.Movie
	err := config.DB.
		Select("id", "poster").
		Where("poster LIKE ?", "http%").
		Find(&list).Error
	if err != nil {
		log.Printf("[PosterSync] Error fetching movies: %v", err)
		return
	}
	if len(list) == 0 {
		return
	}
	log.Printf("[PosterSync] Found %d external posters to mirror", len(list))

	g := new(errgroup.Group)
	g.SetLimit(4)

	for _, m := range list {
		movie := m
		g.Go(func() error {
			if err := mirrorPoster(movie); err != nil {
				log.Printf("[PosterSync] %s: %v", movie.ID, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	log.Println("[PosterSync] Finished poster mirror run")
}

func mirrorPoster(movie movies.Movie) error {
	data, contentType, err := fetchImage(movie.Poster)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	ext := strings.ToLower(path.Ext(movie.Poster))
	if ext == "" || len(ext) > 5 {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("posters/%s%s", utils.GenerateID(), ext)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	newPath, err := files.StorePosterBytes(ctx, objectKey, contentType, data)
	if err != nil {
		return err
	}

	return config.DB.Model(&movies.Movie{}).
		Where("id = ?", movie.ID).
		Update("poster", newPath).Error
}

func fetchImage(url string) ([]byte, string, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, "", err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("not an image: %s", contentType)
	}
	return data, contentType, nil
}
