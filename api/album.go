package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
	"github.com/deartime/deartime-BE/internal/util"
)

type createAlbumRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (server *Server) createAlbum(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	req := new(createAlbumRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	album, err := server.dbStore.CreateAlbum(ctx, db.CreateAlbumParams{
		OwnerID:     userID,
		Name:        req.Name,
		Slug:        util.GenerateRandomSlug(req.Name),
		Description: req.Description,
	})
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		if errCode == db.UniqueViolationCode && constraintName == db.UniqueAlbumSlugConstraint {
			// Random suffix collision, vanishingly rare. Let the client retry.
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("album slug collision, please retry")))
			return
		}

		log.Err(err).Msg("failed to create album")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, album)
}

func (server *Server) listAlbums(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	albums, err := server.dbStore.ListAlbums(ctx, userID)
	if err != nil {
		log.Err(err).Msg("failed to list albums")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, albums)
}

type addAlbumPhotosRequest struct {
	Photos  []*multipart.FileHeader `form:"photos" binding:"required"`
	Caption *string                 `form:"caption"`
}

func (server *Server) addAlbumPhotos(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	album, ok := server.ownedAlbumBySlug(ctx, userID)
	if !ok {
		return
	}

	req := new(addAlbumPhotosRequest)
	if err = ctx.ShouldBindWith(req, binding.FormMultipart); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	uploadedFileURLs, err := server.uploadFileToCloudinary("album", album.Slug, FolderAlbums, req.Photos...)
	if err != nil {
		log.Err(err).Msg("failed to upload album photos")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	photos := make([]db.Photo, 0, len(uploadedFileURLs))
	for _, url := range uploadedFileURLs {
		photo, err := server.dbStore.CreatePhoto(ctx, db.CreatePhotoParams{
			AlbumID:  album.ID,
			ImageURL: url,
			Caption:  req.Caption,
		})
		if err != nil {
			log.Err(err).Msg("failed to save photo")
			ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
			return
		}
		photos = append(photos, photo)
	}

	ctx.JSON(http.StatusOK, photos)
}

func (server *Server) listAlbumPhotos(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	album, ok := server.ownedAlbumBySlug(ctx, userID)
	if !ok {
		return
	}

	photos, err := server.dbStore.ListAlbumPhotos(ctx, album.ID)
	if err != nil {
		log.Err(err).Msg("failed to list album photos")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, photos)
}

// ownedAlbumBySlug loads the album in the slug path parameter and checks the
// caller owns it, writing the error response itself on failure.
func (server *Server) ownedAlbumBySlug(ctx *gin.Context, userID int64) (db.Album, bool) {
	slug := ctx.Param("slug")

	album, err := server.dbStore.GetAlbumBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("album %s not found", slug)))
			return db.Album{}, false
		}

		log.Err(err).Msg("failed to get album")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return db.Album{}, false
	}

	if album.OwnerID != userID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("album does not belong to you")))
		return db.Album{}, false
	}

	return album, true
}
