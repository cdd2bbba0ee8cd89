package repository

import (
	"resto_ops_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

// CreateIfAbsent 条件插入：(staff, tier) 唯一索引下的 ON CONFLICT DO NOTHING，
// 再回读存量行。这是防止并发双发证书的唯一正确性机制，不能拆成先查后写。
// 返回最终存在的那张证书以及本次调用是否真正插入。
func (r *CertificateRepository) CreateIfAbsent(cert *model.Certificate) (*model.Certificate, bool, error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "staff_id"}, {Name: "tier"}},
		DoNothing: true,
	}).Create(cert)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return cert, true, nil
	}

	existing, err := r.FindByStaffAndTier(cert.StaffID, cert.Tier)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *CertificateRepository) FindByStaffAndTier(staffID uint, tier model.Tier) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.DB.Where("staff_id = ? AND tier = ?", staffID, tier).First(&cert).Error
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *CertificateRepository) ListByStaff(staffID uint) ([]model.Certificate, error) {
	var certs []model.Certificate
	err := r.DB.Where("staff_id = ?", staffID).Order("issued_at").Find(&certs).Error
	return certs, err
}

func (r *CertificateRepository) ListAll(page, pageSize int) ([]model.Certificate, int64, error) {
	var certs []model.Certificate
	var total int64

	if err := r.DB.Model(&model.Certificate{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.DB.Preload("Staff").Order("issued_at DESC").
		Offset(offset).Limit(pageSize).Find(&certs).Error
	return certs, total, err
}
