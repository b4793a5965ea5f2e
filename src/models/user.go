package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User ผู้ใช้งานระบบ (นักศึกษา / เจ้าหน้าที่)
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password,omitempty" json:"-"` // ✅ ส่งมาได้จาก frontend, แต่ไม่ส่งกลับ
	Role        string             `bson:"role" json:"role"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	FirstName   string             `bson:"firstName,omitempty" json:"firstName,omitempty"`
	Surname     string             `bson:"surname,omitempty" json:"surname,omitempty"`
	IDNumber    string             `bson:"idNumber,omitempty" json:"idNumber,omitempty"`
	StudentID   string             `bson:"studentID,omitempty" json:"studentID,omitempty"`
}

// ResolvedUser ข้อมูลที่ enrichment ใช้แสดงผล
type ResolvedUser struct {
	DisplayName string `json:"displayName"`
	IDNumber    string `json:"idNumber"`
}
