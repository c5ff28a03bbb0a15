package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/patiponrmutl/BEFamily/database"
	"github.com/patiponrmutl/BEFamily/models"
)

type MemberHandler struct{}

func NewMemberHandler() *MemberHandler { return &MemberHandler{} }

// อ้างถึง parent/spouse ที่ไม่มีอยู่จริง
var errInvalidRef = errors.New("invalid reference")

type memberPayload struct {
	Name       string `json:"name" validate:"required"`
	Avatar     string `json:"avatar"`
	BirthDate  string `json:"birth_date"` // YYYY-MM-DD หรือว่าง
	DeathDate  string `json:"death_date"`
	Bio        string `json:"bio"`
	Generation int    `json:"generation"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	IsPublic   *bool  `json:"is_public"`
	SortOrder  int    `json:"sort_order"`

	// nil = ไม่แตะความสัมพันธ์เดิม, [] = ล้างทั้งหมด, มีค่า = แทนที่ชุดเดิม
	Parents *[]uint `json:"parents"`
	Spouses *[]uint `json:"spouses"`
}

// ข้อมูลย่อของสมาชิกในบล็อก relationships และ tree
type memberBrief struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	Generation int    `json:"generation"`
}

// GET /api/members?generation=&keyword=&page=&limit=
func (h *MemberHandler) List(c echo.Context) error {
	p := getPagination(c)

	tx := database.DB.Model(&models.Member{})
	if g := strings.TrimSpace(c.QueryParam("generation")); g != "" {
		tx = tx.Where("generation = ?", atoiOr(g, 0))
	}
	if kw := strings.TrimSpace(c.QueryParam("keyword")); kw != "" {
		like := "%" + kw + "%"
		tx = tx.Where("name LIKE ? OR bio LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อมูลสมาชิกได้")
	}
	var members []models.Member
	if err := tx.Order("generation ASC, sort_order ASC, id ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&members).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อมูลสมาชิกได้")
	}
	return ok(c, http.StatusOK, "", paginated(members, total, p))
}

// GET /api/members/:id ข้อมูลสมาชิกพร้อมบล็อก relationships
func (h *MemberHandler) Get(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var m models.Member
	if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบสมาชิก")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อมูลสมาชิกได้")
	}

	rel, err := assembleRelationships(database.DB, id)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านความสัมพันธ์ได้")
	}

	return ok(c, http.StatusOK, "", map[string]any{
		"id": m.ID, "name": m.Name, "avatar": m.Avatar,
		"birth_date": m.BirthDate, "death_date": m.DeathDate,
		"bio": m.Bio, "generation": m.Generation, "gender": m.Gender,
		"phone": m.Phone, "email": m.Email, "address": m.Address,
		"is_public": m.IsPublic, "sort_order": m.SortOrder,
		"created_at": m.CreatedAt, "updated_at": m.UpdatedAt,
		"relationships": rel,
	})
}

// assembleRelationships รวบ parents/children/spouses ของสมาชิกหนึ่งคน
func assembleRelationships(db *gorm.DB, id uint) (map[string][]memberBrief, error) {
	sel := "members.id, members.name, members.avatar, members.generation"

	// พ่อแม่: แถว child ที่สมาชิกคนนี้เป็นฝั่ง member_id
	parents := []memberBrief{}
	if err := db.Table("members").Select(sel).
		Joins("JOIN relationships r ON r.related_member_id = members.id").
		Where("r.member_id = ? AND r.relation_type = ?", id, models.RelationChild).
		Scan(&parents).Error; err != nil {
		return nil, err
	}

	// ลูก: แถว child ที่สมาชิกคนนี้เป็นฝั่ง related_member_id
	children := []memberBrief{}
	if err := db.Table("members").Select(sel).
		Joins("JOIN relationships r ON r.member_id = members.id").
		Where("r.related_member_id = ? AND r.relation_type = ?", id, models.RelationChild).
		Scan(&children).Error; err != nil {
		return nil, err
	}

	// คู่สมรส: แถว spouse อ่านได้ทั้งสองทิศทาง และต้องไม่รวมตัวเอง
	spouses := []memberBrief{}
	if err := db.Table("members").Distinct(sel).
		Joins("JOIN relationships r ON r.member_id = members.id OR r.related_member_id = members.id").
		Where("(r.member_id = ? OR r.related_member_id = ?) AND r.relation_type = ?",
			id, id, models.RelationSpouse).
		Where("members.id <> ?", id).
		Scan(&spouses).Error; err != nil {
		return nil, err
	}

	return map[string][]memberBrief{
		"parents":  parents,
		"children": children,
		"spouses":  spouses,
	}, nil
}

// GET /api/members/tree สมาชิกสาธารณะทั้งหมด + เส้นความสัมพันธ์ทั้งหมด
// หมายเหตุ: เส้นความสัมพันธ์ไม่ถูกกรองตาม is_public (พฤติกรรมเดิมของระบบ)
func (h *MemberHandler) Tree(c echo.Context) error {
	type treeMember struct {
		ID         uint    `json:"id"`
		Name       string  `json:"name"`
		Avatar     string  `json:"avatar"`
		Generation int     `json:"generation"`
		Gender     string  `json:"gender"`
		BirthDate  *string `json:"birth_date"`
		DeathDate  *string `json:"death_date"`
	}
	type treeEdge struct {
		MemberID        uint   `json:"member_id"`
		RelatedMemberID uint   `json:"related_member_id"`
		RelationType    string `json:"relation_type"`
	}

	var raw []models.Member
	if err := database.DB.Where("is_public = ?", true).
		Order("generation ASC, sort_order ASC").Find(&raw).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อมูลสมาชิกได้")
	}
	members := make([]treeMember, 0, len(raw))
	for _, m := range raw {
		tm := treeMember{
			ID: m.ID, Name: m.Name, Avatar: m.Avatar,
			Generation: m.Generation, Gender: m.Gender,
		}
		if m.BirthDate != nil {
			s := m.BirthDate.Format("2006-01-02")
			tm.BirthDate = &s
		}
		if m.DeathDate != nil {
			s := m.DeathDate.Format("2006-01-02")
			tm.DeathDate = &s
		}
		members = append(members, tm)
	}

	edges := []treeEdge{}
	if err := database.DB.Model(&models.Relationship{}).
		Select("member_id, related_member_id, relation_type").
		Scan(&edges).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านความสัมพันธ์ได้")
	}

	return ok(c, http.StatusOK, "", map[string]any{
		"members":       members,
		"relationships": edges,
	})
}

// POST /api/admin/members
func (h *MemberHandler) Create(c echo.Context) error {
	var p memberPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	birth, err := parseDate(p.BirthDate)
	if err != nil {
		return fail(c, http.StatusBadRequest, "วันเกิดต้องเป็นรูปแบบ YYYY-MM-DD")
	}
	death, err := parseDate(p.DeathDate)
	if err != nil {
		return fail(c, http.StatusBadRequest, "วันเสียชีวิตต้องเป็นรูปแบบ YYYY-MM-DD")
	}

	m := models.Member{
		Name: strings.TrimSpace(p.Name), Avatar: p.Avatar,
		BirthDate: birth, DeathDate: death, Bio: p.Bio,
		Generation: p.Generation, Gender: p.Gender,
		Phone: p.Phone, Email: p.Email, Address: p.Address,
		IsPublic: true, SortOrder: p.SortOrder,
	}
	if m.Generation < 1 {
		m.Generation = 1
	}
	if p.IsPublic != nil {
		m.IsPublic = *p.IsPublic
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if p.Parents != nil {
			if err := insertEdges(tx, m.ID, *p.Parents, models.RelationChild); err != nil {
				return err
			}
		}
		if p.Spouses != nil {
			if err := insertEdges(tx, m.ID, *p.Spouses, models.RelationSpouse); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errInvalidRef) {
			return fail(c, http.StatusBadRequest, "อ้างถึงสมาชิก (parent/spouse) ที่ไม่มีอยู่ในระบบ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถสร้างสมาชิกได้")
	}

	return ok(c, http.StatusCreated, "สร้างสมาชิกสำเร็จ", map[string]any{"id": m.ID})
}

// PUT /api/admin/members/:id
// parents/spouses ที่ไม่ส่งมา = คงชุดเดิมไว้, ส่ง [] = ล้างทั้งหมด
func (h *MemberHandler) Update(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var existing models.Member
	if err := database.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบสมาชิก")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อมูลสมาชิกได้")
	}

	var p memberPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	birth, err := parseDate(p.BirthDate)
	if err != nil {
		return fail(c, http.StatusBadRequest, "วันเกิดต้องเป็นรูปแบบ YYYY-MM-DD")
	}
	death, err := parseDate(p.DeathDate)
	if err != nil {
		return fail(c, http.StatusBadRequest, "วันเสียชีวิตต้องเป็นรูปแบบ YYYY-MM-DD")
	}

	existing.Name = strings.TrimSpace(p.Name)
	existing.Avatar = p.Avatar
	existing.BirthDate = birth
	existing.DeathDate = death
	existing.Bio = p.Bio
	existing.Generation = p.Generation
	if existing.Generation < 1 {
		existing.Generation = 1
	}
	existing.Gender = p.Gender
	existing.Phone = p.Phone
	existing.Email = p.Email
	existing.Address = p.Address
	existing.SortOrder = p.SortOrder
	if p.IsPublic != nil {
		existing.IsPublic = *p.IsPublic
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		if p.Parents != nil {
			// ลบแถว child เดิมของสมาชิกคนนี้ก่อนแล้วใส่ชุดใหม่
			if err := tx.Where("member_id = ? AND relation_type = ?", id, models.RelationChild).
				Delete(&models.Relationship{}).Error; err != nil {
				return err
			}
			if err := insertEdges(tx, id, *p.Parents, models.RelationChild); err != nil {
				return err
			}
		}
		if p.Spouses != nil {
			// spouse เก็บทิศทางเดียวแต่จับคู่ได้สองด้าน จึงลบทั้งสองด้าน
			if err := tx.Where("(member_id = ? OR related_member_id = ?) AND relation_type = ?",
				id, id, models.RelationSpouse).
				Delete(&models.Relationship{}).Error; err != nil {
				return err
			}
			if err := insertEdges(tx, id, *p.Spouses, models.RelationSpouse); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errInvalidRef) {
			return fail(c, http.StatusBadRequest, "อ้างถึงสมาชิก (parent/spouse) ที่ไม่มีอยู่ในระบบ")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถแก้ไขสมาชิกได้")
	}

	return ok(c, http.StatusOK, "แก้ไขสมาชิกสำเร็จ", nil)
}

// insertEdges ตรวจว่า id ปลายทางมีอยู่จริงทั้งหมดก่อน แล้วจึงใส่เส้นความสัมพันธ์
func insertEdges(tx *gorm.DB, memberID uint, targets []uint, relType string) error {
	if len(targets) == 0 {
		return nil
	}
	uniq := make([]uint, 0, len(targets))
	seen := make(map[uint]bool, len(targets))
	for _, t := range targets {
		if !seen[t] {
			seen[t] = true
			uniq = append(uniq, t)
		}
	}

	var n int64
	if err := tx.Model(&models.Member{}).Where("id IN ?", uniq).Count(&n).Error; err != nil {
		return err
	}
	if n != int64(len(uniq)) {
		return errInvalidRef
	}

	for _, t := range uniq {
		edge := models.Relationship{
			MemberID:        memberID,
			RelatedMemberID: t,
			RelationType:    relType,
		}
		if err := tx.Create(&edge).Error; err != nil {
			return err
		}
	}
	return nil
}

// DELETE /api/admin/members/:id
// ลบเส้นความสัมพันธ์และบัญชีที่ผูกอยู่ในโค้ดโดยตรง ไม่พึ่ง FK cascade
func (h *MemberHandler) Delete(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var m models.Member
	if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบสมาชิก")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อมูลสมาชิกได้")
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ? OR related_member_id = ?", id, id).
			Delete(&models.Relationship{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).
			Delete(&models.MemberUser{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถลบสมาชิกได้")
	}

	return ok(c, http.StatusOK, "ลบสมาชิกสำเร็จ", nil)
}

type memberAccountPayload struct {
	Username string `json:"username" validate:"required,min=3,max=60"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// POST /api/admin/members/:id/account สร้างบัญชีให้สมาชิกที่มีอยู่แล้ว
func (h *MemberHandler) CreateAccount(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))

	var m models.Member
	if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "ไม่พบสมาชิก")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถอ่านข้อมูลสมาชิกได้")
	}

	var p memberAccountPayload
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "รูปแบบข้อมูลไม่ถูกต้อง")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	p.Username = strings.TrimSpace(p.Username)

	// สมาชิกคนนี้มีบัญชีแล้วหรือยัง
	var cnt int64
	if err := database.DB.Model(&models.MemberUser{}).
		Where("member_id = ?", id).Count(&cnt).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถตรวจสอบบัญชีได้")
	}
	if cnt > 0 {
		return fail(c, http.StatusConflict, "สมาชิกนี้มีบัญชีเข้าสู่ระบบแล้ว")
	}

	// username ต้องไม่ซ้ำกับบัญชีอื่น
	if err := database.DB.Model(&models.MemberUser{}).
		Where("username = ?", p.Username).Count(&cnt).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถตรวจสอบบัญชีได้")
	}
	if cnt > 0 {
		return fail(c, http.StatusConflict, "ชื่อผู้ใช้นี้ถูกใช้แล้ว")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "ไม่สามารถสร้างบัญชีได้")
	}
	u := models.MemberUser{
		MemberID: id,
		Username: p.Username,
		Password: string(hash),
		Email:    p.Email,
		IsActive: true,
	}
	if err := database.DB.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fail(c, http.StatusConflict, "ชื่อผู้ใช้นี้ถูกใช้แล้ว")
		}
		return fail(c, http.StatusInternalServerError, "ไม่สามารถสร้างบัญชีได้")
	}

	return ok(c, http.StatusCreated, "สร้างบัญชีสำเร็จ", map[string]any{"id": u.ID})
}
