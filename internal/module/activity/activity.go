package activity

import (
	"time"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/mediastore"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ActivityCreateReq 定义创建活动请求的结构体（multipart 表单字段）
type ActivityCreateReq struct {
	Title        string `form:"title" binding:"required"`       // 活动标题
	Description  string `form:"description"`                    // 活动描述
	StartAt      string `form:"start_at" binding:"required"`    // 开始时间，RFC3339
	EndAt        string `form:"end_at" binding:"required"`      // 结束时间，必须晚于开始时间
	LocationText string `form:"location_text"`                  // 地点
	ContactInfo  string `form:"contact_info" binding:"required"` // 联系方式，JSON 字符串，不可为空对象
	Status       string `form:"status" binding:"required"`      // 活动状态
	Category     string `form:"category" binding:"required"`    // 活动分类，决定图片存储目录
	ImagePath    string `form:"image_path"`                     // 外部图片 URL，提供时镜像进存储桶
}

// parseTimeRange 解析并校验活动起止时间
func parseTimeRange(startAt, endAt string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startAt)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("开始时间格式错误")
	}
	end, err := time.Parse(time.RFC3339, endAt)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("结束时间格式错误")
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, errors.New("结束时间必须晚于开始时间")
	}
	return start.UTC(), end.UTC(), nil
}

// parseContactInfo 解析联系方式并拒绝空对象
func parseContactInfo(raw string) (model.ContactInfo, error) {
	info, err := model.ParseContactInfo(raw)
	if err != nil {
		return nil, errors.New("联系方式必须是合法的 JSON 对象")
	}
	if len(info) == 0 {
		return nil, errors.New("联系方式不能为空")
	}
	return info, nil
}

// CreateActivity 处理创建活动请求
// 图片来源二选一：上传文件直接入桶；外部 image_path 则镜像进桶，库中只存桶内公开 URL
func CreateActivity(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req ActivityCreateReq
	if err := c.ShouldBind(&req); err != nil {
		log.Error("绑定创建活动请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	startAt, endAt, err := parseTimeRange(req.StartAt, req.EndAt)
	if err != nil {
		log.Warn("活动时间校验失败", "error", err, "title", req.Title)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	contactInfo, err := parseContactInfo(req.ContactInfo)
	if err != nil {
		log.Warn("联系方式校验失败", "error", err, "title", req.Title)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	status := model.ActivityStatus(req.Status)
	if !status.Valid() {
		response.Fail(c, response.ErrInvalidRequest.WithTips("未知的活动状态"))
		return
	}
	category := model.ActivityCategory(req.Category)
	if !category.Valid() {
		response.Fail(c, response.ErrInvalidRequest.WithTips("未知的活动分类"))
		return
	}

	imagePath := ""
	switch {
	case req.ImagePath != "":
		// 外部图片镜像进桶，避免引用随时可能失效的第三方 URL
		imagePath, err = mediastore.Get().MirrorExternalImage(c.Request.Context(), req.Category, req.Title, req.ImagePath)
		if err != nil {
			log.Error("镜像外部图片失败", "error", err, "image_path", req.ImagePath)
			response.Fail(c, response.ErrStorage.WithOrigin(err))
			return
		}
	default:
		if fileHeader, ferr := c.FormFile("image_file"); ferr == nil && fileHeader != nil {
			imagePath, err = mediastore.Get().UploadActivityImage(c.Request.Context(), req.Category, req.Title, fileHeader)
			if err != nil {
				log.Error("上传活动图片失败", "error", err, "title", req.Title)
				response.Fail(c, response.ErrStorage.WithOrigin(err))
				return
			}
		}
	}

	activity := model.Activity{
		Model:        model.Model{ID: uuid.NewString()},
		CreatedBy:    payload.StudentID,
		Title:        req.Title,
		Description:  req.Description,
		StartAt:      startAt,
		EndAt:        endAt,
		LocationText: req.LocationText,
		ContactInfo:  contactInfo,
		ImagePath:    imagePath,
		Status:       status,
		Category:     category,
	}

	if err := database.DB.Create(&activity).Error; err != nil {
		log.Error("创建活动失败", "error", err, "title", req.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动创建成功",
		"id", activity.ID,
		"title", activity.Title,
		"created_by", activity.CreatedBy)

	response.Success(c, activity)
}

// ListThumbnails 获取活动缩略图列表，按开始时间倒序
func ListThumbnails(c *gin.Context) {
	var thumbnails []model.ActivityThumbnail
	if err := database.DB.Model(&model.Activity{}).
		Select("id, title, image_path, start_at, status, category").
		Order("start_at DESC").
		Find(&thumbnails).Error; err != nil {
		log.Error("获取活动缩略图失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, thumbnails)
}

// ListActivities 获取活动完整列表，按创建时间倒序
func ListActivities(c *gin.Context) {
	var activities []model.Activity
	if err := database.DB.Order("created_at DESC").Find(&activities).Error; err != nil {
		log.Error("获取活动列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, activities)
}

// UpdateActivity 处理部分更新活动请求
// 仅更新请求中出现的字段；分类变化时迁移桶内图片目录，新文件上传覆盖原引用
func UpdateActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("活动ID不能为空"))
		return
	}

	var activity model.Activity
	if err := database.DB.First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("活动不存在", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		log.Error("查询活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// multipart 部分更新：以字段是否出现在表单中判断是否修改
	if v, ok := c.GetPostForm("title"); ok {
		activity.Title = v
	}
	if v, ok := c.GetPostForm("description"); ok {
		activity.Description = v
	}
	if v, ok := c.GetPostForm("location_text"); ok {
		activity.LocationText = v
	}

	startAt := activity.StartAt.Format(time.RFC3339)
	endAt := activity.EndAt.Format(time.RFC3339)
	if v, ok := c.GetPostForm("start_at"); ok {
		startAt = v
	}
	if v, ok := c.GetPostForm("end_at"); ok {
		endAt = v
	}
	// 合并后的起止时间重新校验
	newStart, newEnd, err := parseTimeRange(startAt, endAt)
	if err != nil {
		log.Warn("活动时间校验失败", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}
	activity.StartAt, activity.EndAt = newStart, newEnd

	if v, ok := c.GetPostForm("contact_info"); ok {
		contactInfo, err := parseContactInfo(v)
		if err != nil {
			log.Warn("联系方式校验失败", "error", err, "id", id)
			response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
			return
		}
		activity.ContactInfo = contactInfo
	}

	if v, ok := c.GetPostForm("status"); ok {
		status := model.ActivityStatus(v)
		if !status.Valid() {
			response.Fail(c, response.ErrInvalidRequest.WithTips("未知的活动状态"))
			return
		}
		activity.Status = status
	}

	categoryChanged := false
	if v, ok := c.GetPostForm("category"); ok {
		category := model.ActivityCategory(v)
		if !category.Valid() {
			response.Fail(c, response.ErrInvalidRequest.WithTips("未知的活动分类"))
			return
		}
		categoryChanged = category != activity.Category
		activity.Category = category
	}

	if fileHeader, ferr := c.FormFile("image_file"); ferr == nil && fileHeader != nil {
		// 新图片按（可能已更新的）分类入桶
		imagePath, err := mediastore.Get().UploadActivityImage(c.Request.Context(), string(activity.Category), activity.Title, fileHeader)
		if err != nil {
			log.Error("上传活动图片失败", "error", err, "id", id)
			response.Fail(c, response.ErrStorage.WithOrigin(err))
			return
		}
		activity.ImagePath = imagePath
	} else if categoryChanged && activity.ImagePath != "" {
		// 分类变更且未换图：桶内已有图片迁移到新分类目录
		if _, kerr := mediastore.Get().KeyFromPublicURL(activity.ImagePath); kerr == nil {
			imagePath, merr := mediastore.Get().MoveActivityImage(c.Request.Context(), activity.ImagePath, string(activity.Category))
			if merr != nil {
				log.Error("迁移活动图片失败", "error", merr, "id", id)
				response.Fail(c, response.ErrStorage.WithOrigin(merr))
				return
			}
			activity.ImagePath = imagePath
		}
	}

	if err := database.DB.Save(&activity).Error; err != nil {
		log.Error("更新活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动更新成功",
		"id", activity.ID,
		"title", activity.Title)

	response.Success(c, activity)
}

// DeleteActivity 处理删除活动请求，连同桶内整个图片目录一并清理
func DeleteActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("活动ID不能为空"))
		return
	}

	var activity model.Activity
	if err := database.DB.First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("活动不存在", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		log.Error("查询活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Delete(&activity).Error; err != nil {
		log.Error("删除活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 行已删除，图片清理失败只记录告警，不回滚业务结果
	if activity.ImagePath != "" {
		if _, kerr := mediastore.Get().KeyFromPublicURL(activity.ImagePath); kerr == nil {
			if err := mediastore.Get().RemoveActivityFolder(c.Request.Context(), activity.ImagePath); err != nil {
				log.Warn("清理活动图片目录失败", "error", err, "id", id, "image_path", activity.ImagePath)
			}
		}
	}

	log.Info("活动删除成功", "id", activity.ID, "title", activity.Title)
	response.Success(c)
}

// PresignUpload 为前端直传活动图片生成预签名 PUT URL
func PresignUpload(c *gin.Context) {
	var req mediastore.PresignedUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定预签名请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if !model.ActivityCategory(req.Category).Valid() {
		response.Fail(c, response.ErrInvalidRequest.WithTips("未知的活动分类"))
		return
	}

	resp, err := mediastore.Get().GeneratePresignedUploadURL(c.Request.Context(), req)
	if err != nil {
		log.Error("生成预签名 URL 失败", "error", err, "category", req.Category)
		response.Fail(c, response.ErrStorage.WithOrigin(err))
		return
	}

	response.Success(c, resp)
}
