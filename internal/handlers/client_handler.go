package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	clientdomain "github.com/BruksfildServices01/odutech/internal/domain/client"
	"github.com/BruksfildServices01/odutech/internal/dto"
	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/httpresp"
	"github.com/BruksfildServices01/odutech/internal/middleware"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/pagination"
	"github.com/BruksfildServices01/odutech/internal/timezone"
	"github.com/BruksfildServices01/odutech/internal/usecase/attachment"
	ucClient "github.com/BruksfildServices01/odutech/internal/usecase/client"
)

// campo multipart da foto do cliente
const photoField = "foto"

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	repo  clientdomain.Repository
	save  *ucClient.SaveClient
	del   *ucClient.DeleteClient
	photo *attachment.AttachPhoto
	now   timezone.Clock
}

func NewClientHandler(
	repo clientdomain.Repository,
	save *ucClient.SaveClient,
	del *ucClient.DeleteClient,
	photo *attachment.AttachPhoto,
) *ClientHandler {
	return &ClientHandler{
		repo:  repo,
		save:  save,
		del:   del,
		photo: photo,
		now:   timezone.Now,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RitualsRequest struct {
	Navalha        string `json:"navalha" form:"navalha"`
	Babakekere     string `json:"babakekere" form:"babakekere"`
	Iyakekere      string `json:"iyakekere" form:"iyakekere"`
	Ojubona        string `json:"ojubona" form:"ojubona"`
	Padrinho       string `json:"padrinho" form:"padrinho"`
	Madrinha       string `json:"madrinha" form:"madrinha"`
	Orunko         string `json:"orunko" form:"orunko"`
	Orixa          string `json:"orixa" form:"orixa"`
	Ajunto         string `json:"ajunto" form:"ajunto"`
	SettledDeities string `json:"settled_deities" form:"settled_deities"`
}

// ClientRequest chega como JSON ou multipart (com o arquivo em "foto").
// Datas no formato AAAA-MM-DD.
type ClientRequest struct {
	Name           string `json:"name" form:"name"`
	BirthDate      string `json:"birth_date" form:"birth_date"`
	MotherName     string `json:"mother_name" form:"mother_name"`
	InitiationDate string `json:"initiation_date" form:"initiation_date"`
	Email          string `json:"email" form:"email"`
	Phone          string `json:"phone" form:"phone"`
	Address        string `json:"address" form:"address"`
	Notes          string `json:"notes" form:"notes"`

	RitualsRequest
}

func (r RitualsRequest) toModel() models.Rituals {
	return models.Rituals{
		Navalha:           strings.TrimSpace(r.Navalha),
		Babakekere:        strings.TrimSpace(r.Babakekere),
		Iyakekere:         strings.TrimSpace(r.Iyakekere),
		Ojubona:           strings.TrimSpace(r.Ojubona),
		Padrinho:          strings.TrimSpace(r.Padrinho),
		Madrinha:          strings.TrimSpace(r.Madrinha),
		Orunko:            strings.TrimSpace(r.Orunko),
		Orixa:             strings.TrimSpace(r.Orixa),
		Ajunto:            strings.TrimSpace(r.Ajunto),
		SettledDeitiesRaw: strings.TrimSpace(r.SettledDeities),
	}
}

func (r ClientRequest) toModel() (models.Client, error) {
	birth, err := parseOptionalDate(r.BirthDate)
	if err != nil {
		return models.Client{}, httperr.Validation("Data de nascimento inválida.")
	}
	initiation, err := parseOptionalDate(r.InitiationDate)
	if err != nil {
		return models.Client{}, httperr.Validation("Data de iniciação inválida.")
	}

	c := models.Client{
		Name:           r.Name,
		MotherName:     r.MotherName,
		InitiationDate: initiation,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        strings.TrimSpace(r.Address),
		Notes:          strings.TrimSpace(r.Notes),
		Rituals:        r.RitualsRequest.toModel(),
	}
	if birth != nil {
		c.BirthDate = *birth
	}
	return c, nil
}

// ======================================================
// LIST / DETAIL
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	page, err := h.repo.List(c.Request.Context(), userID, clientdomain.ListFilter{
		Search: c.Query("search"),
		Page:   pagination.Parse(c.Query("page")),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_clients")
		return
	}

	now := h.now()
	views := make([]dto.ClientView, 0, len(page.Items))
	for _, cl := range page.Items {
		views = append(views, dto.NewClientView(cl, now))
	}

	httpresp.OK(c, pagination.Page[dto.ClientView]{
		Items:    views,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
		Pages:    page.Pages,
	})
}

// Options lista todos os clientes para os seletores de formulário.
func (h *ClientHandler) Options(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	items, err := h.repo.ListAll(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_clients")
		return
	}

	httpresp.List(c, items)
}

func (h *ClientHandler) Get(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	d, err := h.repo.Detail(c.Request.Context(), userID, id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_client")
		return
	}

	httpresp.OK(c, dto.NewClientDetail(d, h.now()))
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	h.write(c, 0)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.write(c, id)
}

// write atende criação (id 0) e edição; a foto é opcional nos dois.
func (h *ClientHandler) write(c *gin.Context, id uint) {
	userID := middleware.CurrentUserID(c)

	var req ClientRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	client, err := req.toModel()
	if err != nil {
		httperr.FromError(c, err, "invalid_request")
		return
	}

	photo, done, err := formUpload(c, photoField)
	defer done()
	if err != nil {
		bindFailed(c, err)
		return
	}

	in := ucClient.SaveClientInput{
		OwnerID: userID,
		Client:  client,
		Photo:   photo,
	}

	var res *ucClient.SaveClientResult
	if id == 0 {
		res, err = h.save.Create(c.Request.Context(), in)
	} else {
		res, err = h.save.Update(c.Request.Context(), id, in)
	}
	if err != nil {
		httperr.FromError(c, err, "failed_to_save_client")
		return
	}

	body := gin.H{"client": dto.NewClientView(*res.Client, h.now())}
	if res.Warning != "" {
		body["warning"] = res.Warning
	}

	if id == 0 {
		httpresp.Created(c, body)
		return
	}
	httpresp.OK(c, body)
}

func (h *ClientHandler) UpdateRituals(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req RitualsRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	client, err := h.save.UpdateRituals(c.Request.Context(), userID, id, req.toModel())
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_rituals")
		return
	}

	httpresp.OK(c, gin.H{"client": dto.NewClientView(*client, h.now())})
}

// UpdatePhoto troca só a foto; aqui a falha de gravação é erro, não aviso.
func (h *ClientHandler) UpdatePhoto(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	photo, done, err := formUpload(c, photoField)
	defer done()
	if err != nil {
		bindFailed(c, err)
		return
	}
	if photo == nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Selecione uma imagem.")
		return
	}

	client, err := h.photo.Execute(c.Request.Context(), userID, id, *photo)
	if err != nil {
		httperr.FromError(c, err, "failed_to_save_photo")
		return
	}

	httpresp.OK(c, gin.H{"client": dto.NewClientView(*client, h.now())})
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.del.Execute(c.Request.Context(), userID, id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_client")
		return
	}

	httpresp.NoContent(c)
}
