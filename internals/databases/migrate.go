package database

import (
	"log"

	pacModel "pengajianku_backend/internals/features/lembaga/pac/model"
	pcModel "pengajianku_backend/internals/features/lembaga/pc/model"
	attendanceModel "pengajianku_backend/internals/features/school/attendances/model"
	classModel "pengajianku_backend/internals/features/school/classes/model"
	learningModel "pengajianku_backend/internals/features/school/learnings/model"
	parentModel "pengajianku_backend/internals/features/school/parents/model"
	studentModel "pengajianku_backend/internals/features/school/students/model"
	teacherModel "pengajianku_backend/internals/features/school/teachers/model"
	violationModel "pengajianku_backend/internals/features/school/violations/model"
	userModel "pengajianku_backend/internals/features/users/auth/model"
)

// AutoMigrate sinkronisasi skema semua model.
// gen_random_uuid() butuh ekstensi pgcrypto.
func AutoMigrate() {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("⚠️ Gagal memastikan ekstensi pgcrypto: %v", err)
	}

	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&teacherModel.TeacherModel{},
		&learningModel.LearningModel{},
		&classModel.ClassModel{},
		&parentModel.ParentModel{},
		&studentModel.StudentModel{},
		&violationModel.ViolationModel{},
		&attendanceModel.AttendanceModel{},
		&pacModel.PacModel{},
		&pcModel.PcModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi database: %v", err)
	}

	log.Println("✅ Migrasi database selesai")
}
