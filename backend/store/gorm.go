package store

import (
	"errors"

	"coursehub/backend/models"

	"gorm.io/gorm"
)

// GORM-backed implementations used in production against Postgres.

func NewGormStores(db *gorm.DB) Stores {
	return Stores{
		Admins:   &GormAdminStore{DB: db},
		Teachers: &GormTeacherStore{DB: db},
		Courses:  &GormCourseStore{DB: db},
	}
}

type GormAdminStore struct {
	DB *gorm.DB
}

func (s *GormAdminStore) FindByCredentials(adminname, password string) (models.Admin, bool, error) {
	var admin models.Admin
	err := s.DB.Where("adminname = ? AND password = ?", adminname, password).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Admin{}, false, nil
	}
	if err != nil {
		return models.Admin{}, false, err
	}
	return admin, true, nil
}

func (s *GormAdminStore) Count() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Admin{}).Count(&count).Error
	return count, err
}

func (s *GormAdminStore) Insert(admin models.Admin) (models.Admin, error) {
	if err := s.DB.Create(&admin).Error; err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}

type GormTeacherStore struct {
	DB *gorm.DB
}

func (s *GormTeacherStore) List() ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := s.DB.Order("id").Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

func (s *GormTeacherStore) FindByID(id uint) (models.Teacher, bool, error) {
	var teacher models.Teacher
	err := s.DB.First(&teacher, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Teacher{}, false, nil
	}
	if err != nil {
		return models.Teacher{}, false, err
	}
	return teacher, true, nil
}

func (s *GormTeacherStore) FindByCredentials(username, password string) (models.Teacher, bool, error) {
	var teacher models.Teacher
	err := s.DB.Where("username = ? AND password = ?", username, password).First(&teacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Teacher{}, false, nil
	}
	if err != nil {
		return models.Teacher{}, false, err
	}
	return teacher, true, nil
}

func (s *GormTeacherStore) Insert(teacher models.Teacher) (models.Teacher, error) {
	if err := s.DB.Create(&teacher).Error; err != nil {
		return models.Teacher{}, err
	}
	return teacher, nil
}

func (s *GormTeacherStore) Update(teacher models.Teacher) (models.Teacher, error) {
	if err := s.DB.Save(&teacher).Error; err != nil {
		return models.Teacher{}, err
	}
	return teacher, nil
}

func (s *GormTeacherStore) Delete(id uint) error {
	return s.DB.Delete(&models.Teacher{}, id).Error
}

type GormCourseStore struct {
	DB *gorm.DB
}

func (s *GormCourseStore) List() ([]models.Course, error) {
	var courses []models.Course
	if err := s.DB.Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormCourseStore) FindByID(id uint) (models.Course, bool, error) {
	var course models.Course
	err := s.DB.First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Course{}, false, nil
	}
	if err != nil {
		return models.Course{}, false, err
	}
	return course, true, nil
}

func (s *GormCourseStore) Insert(course models.Course) (models.Course, error) {
	if err := s.DB.Create(&course).Error; err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (s *GormCourseStore) Update(course models.Course) (models.Course, error) {
	if err := s.DB.Save(&course).Error; err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (s *GormCourseStore) Delete(id uint) error {
	return s.DB.Delete(&models.Course{}, id).Error
}
